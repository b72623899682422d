package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// ComplaintsStorage implements model.ComplaintsStore using GORM
type ComplaintsStorage struct {
	db *gorm.DB
}

func applyComplaintFilter(query *gorm.DB, f model.ComplaintFilter) *gorm.DB {
	if f.DriverID != nil {
		query = query.Where("driver_id = ?", *f.DriverID)
	}
	if f.StaffID != nil {
		query = query.Where("staff_id = ?", *f.StaffID)
	}
	if f.FranchiseID != nil {
		query = query.Where("franchise_id = ?", *f.FranchiseID)
	}
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	return query
}

// Create stores a new complaint; an ID is assigned when empty
func (s *ComplaintsStorage) Create(c *model.Complaint) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return s.db.Create(c).Error
}

// Get returns a complaint by ID
func (s *ComplaintsStorage) Get(id string) (*model.Complaint, error) {
	var c model.Complaint
	if err := s.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, model.NotFoundError("Complaint not found")
	}
	return &c, nil
}

// List returns all complaints matching the filter, newest first
func (s *ComplaintsStorage) List(f model.ComplaintFilter) ([]model.Complaint, error) {
	var cs []model.Complaint
	query := applyComplaintFilter(s.db.Model(&model.Complaint{}), f)
	if err := query.Order("created_at DESC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

// ListPage returns one page of complaints matching the filter together with
// the pagination envelope
func (s *ComplaintsStorage) ListPage(f model.ComplaintFilter, p model.PageParams) (
	[]model.Complaint, model.Pagination, error,
) {
	p = p.Normalize()
	var total int64
	if err := applyComplaintFilter(s.db.Model(&model.Complaint{}), f).Count(&total).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	var cs []model.Complaint
	query := applyComplaintFilter(s.db.Model(&model.Complaint{}), f)
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&cs).Error; err != nil {
		return nil, model.Pagination{}, err
	}
	return cs, model.NewPagination(p, total), nil
}

// Update saves the passed complaint
func (s *ComplaintsStorage) Update(c *model.Complaint) error {
	return s.db.Save(c).Error
}

// Delete hard-deletes a complaint by ID
func (s *ComplaintsStorage) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Complaint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundError("Complaint not found")
	}
	return nil
}

// Count returns the number of complaints matching the filter
func (s *ComplaintsStorage) Count(f model.ComplaintFilter) (int64, error) {
	var count int64
	err := applyComplaintFilter(s.db.Model(&model.Complaint{}), f).Count(&count).Error
	return count, err
}
