package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// StaffStorage implements model.StaffStore using GORM
type StaffStorage struct {
	db *gorm.DB
}

// Create stores a new staff member; an ID is assigned when empty and the
// status defaults to ACTIVE
func (s *StaffStorage) Create(st *model.Staff) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Status == "" {
		st.Status = model.StaffActive
	}
	return s.db.Create(st).Error
}

// Get returns a staff member by ID
func (s *StaffStorage) Get(id string) (*model.Staff, error) {
	var st model.Staff
	if err := s.db.Where("id = ?", id).First(&st).Error; err != nil {
		return nil, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	return &st, nil
}

// List returns all staff members, optionally restricted to a franchise
func (s *StaffStorage) List(franchiseID *string) ([]model.Staff, error) {
	var sts []model.Staff
	query := s.db.Model(&model.Staff{})
	if franchiseID != nil {
		query = query.Where("franchise_id = ?", *franchiseID)
	}
	if err := query.Find(&sts).Error; err != nil {
		return nil, err
	}
	return sts, nil
}

// Update saves the passed staff member
func (s *StaffStorage) Update(st *model.Staff) error {
	return s.db.Save(st).Error
}

// Delete removes a staff member by ID
func (s *StaffStorage) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Staff{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("staff not found: %s", id)
	}
	return nil
}

// UpdateStatus changes the status of a staff member
func (s *StaffStorage) UpdateStatus(id string, status model.StaffStatus) error {
	return s.db.Transaction(
		func(tx *gorm.DB) error {
			var st model.Staff
			if res := tx.Where("id = ?", id).First(&st); res.Error != nil {
				return model.NotFoundErrorFmt("staff not found: %s", id)
			}
			st.Status = status
			return tx.Save(&st).Error
		},
	)
}

// IncrementWarningCount atomically increments warning_count by 1 and returns
// the post-increment value.
func (s *StaffStorage) IncrementWarningCount(id string) (int, error) {
	var count int
	err := s.db.Transaction(
		func(tx *gorm.DB) error {
			res := tx.Model(&model.Staff{}).Where("id = ?", id).
				UpdateColumn("warning_count", gorm.Expr("warning_count + ?", 1))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return model.NotFoundErrorFmt("staff not found: %s", id)
			}
			return tx.Model(&model.Staff{}).Where("id = ?", id).
				Pluck("warning_count", &count).Error
		},
	)
	return count, err
}

// Fire transitions a staff member to FIRED. It is a no-op when the staff
// member is already fired; the returned bool reports whether this call
// performed the transition.
func (s *StaffStorage) Fire(id string) (fired bool, err error) {
	err = s.db.Transaction(
		func(tx *gorm.DB) error {
			var st model.Staff
			if res := tx.Where("id = ?", id).First(&st); res.Error != nil {
				return model.NotFoundErrorFmt("staff not found: %s", id)
			}
			if st.Status.Terminal() {
				return nil
			}
			st.Status = model.StaffFired
			if err := tx.Save(&st).Error; err != nil {
				return err
			}
			fired = true
			return nil
		},
	)
	return fired, err
}

// CountByFranchise returns the number of staff members in a franchise
func (s *StaffStorage) CountByFranchise(franchiseID string) (int64, error) {
	var count int64
	err := s.db.Model(&model.Staff{}).Where("franchise_id = ?", franchiseID).Count(&count).Error
	return count, err
}
