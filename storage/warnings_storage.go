package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// WarningsStorage implements model.WarningsStore using GORM
type WarningsStorage struct {
	db *gorm.DB
}

func applyWarningFilter(query *gorm.DB, f model.WarningFilter) *gorm.DB {
	if f.DriverID != nil {
		query = query.Where("driver_id = ?", *f.DriverID)
	}
	if f.StaffID != nil {
		query = query.Where("staff_id = ?", *f.StaffID)
	}
	if f.FranchiseID != nil {
		query = query.Where("franchise_id = ?", *f.FranchiseID)
	}
	return query
}

// Create stores a new warning; an ID is assigned when empty
func (s *WarningsStorage) Create(w *model.Warning) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return s.db.Create(w).Error
}

// Get returns a warning by ID
func (s *WarningsStorage) Get(id string) (*model.Warning, error) {
	var w model.Warning
	if err := s.db.Where("id = ?", id).First(&w).Error; err != nil {
		return nil, model.NotFoundError("Warning not found")
	}
	return &w, nil
}

// List returns all warnings matching the filter, newest first
func (s *WarningsStorage) List(f model.WarningFilter) ([]model.Warning, error) {
	var ws []model.Warning
	query := applyWarningFilter(s.db.Model(&model.Warning{}), f)
	if err := query.Order("created_at DESC").Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

// ListPage returns one page of warnings matching the filter together with
// the pagination envelope
func (s *WarningsStorage) ListPage(f model.WarningFilter, p model.PageParams) (
	[]model.Warning, model.Pagination, error,
) {
	p = p.Normalize()
	var total int64
	if err := applyWarningFilter(s.db.Model(&model.Warning{}), f).Count(&total).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	var ws []model.Warning
	query := applyWarningFilter(s.db.Model(&model.Warning{}), f)
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&ws).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	return ws, model.NewPagination(p, total), nil
}

// Delete hard-deletes a warning by ID. The target entity's warning counter
// is deliberately left untouched.
func (s *WarningsStorage) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Warning{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundError("Warning not found")
	}
	return nil
}

// Count returns the number of warnings matching the filter
func (s *WarningsStorage) Count(f model.WarningFilter) (int64, error) {
	var count int64
	err := applyWarningFilter(s.db.Model(&model.Warning{}), f).Count(&count).Error
	return count, err
}
