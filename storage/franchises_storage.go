package storage

import (
	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// FranchisesStorage implements model.FranchisesStore using GORM
type FranchisesStorage struct {
	db *gorm.DB
}

// Create stores a new franchise; an ID is assigned when empty
func (s *FranchisesStorage) Create(f *model.Franchise) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	var existing int64
	if err := s.db.Model(&model.Franchise{}).Where("code = ?", f.Code).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return model.AlreadyExistsErrorFmt("franchise code already in use: %s", f.Code)
	}
	return s.db.Create(f).Error
}

// Get returns a franchise by ID
func (s *FranchisesStorage) Get(id string) (*model.Franchise, error) {
	var f model.Franchise
	if err := s.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, model.NotFoundErrorFmt("franchise not found: %s", id)
	}
	return &f, nil
}

// List returns all franchises
func (s *FranchisesStorage) List() ([]model.Franchise, error) {
	var fs []model.Franchise
	if err := s.db.Find(&fs).Error; err != nil {
		return nil, err
	}
	return fs, nil
}

// Update saves the passed franchise
func (s *FranchisesStorage) Update(f *model.Franchise) error {
	return s.db.Save(f).Error
}

// Delete removes a franchise by ID
func (s *FranchisesStorage) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Franchise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("franchise not found: %s", id)
	}
	return nil
}
