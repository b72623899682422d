package storage

import (
	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// ActivityStorage implements model.ActivityStore using GORM
type ActivityStorage struct {
	db *gorm.DB
}

// Append stores an activity log entry
func (s *ActivityStorage) Append(e *model.ActivityLog) error {
	return s.db.Create(e).Error
}

// ListPage returns one page of activity entries, newest first, optionally
// restricted to a franchise
func (s *ActivityStorage) ListPage(franchiseID *string, p model.PageParams) (
	[]model.ActivityLog, model.Pagination, error,
) {
	p = p.Normalize()
	query := s.db.Model(&model.ActivityLog{})
	if franchiseID != nil {
		query = query.Where("franchise_id = ?", *franchiseID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	var es []model.ActivityLog
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&es).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	return es, model.NewPagination(p, total), nil
}
