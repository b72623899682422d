package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// DriversStorage implements model.DriversStore using GORM
type DriversStorage struct {
	db *gorm.DB
}

// Create stores a new driver; an ID is assigned when empty and the status
// defaults to ACTIVE
func (s *DriversStorage) Create(d *model.Driver) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Status == "" {
		d.Status = model.DriverActive
	}
	return s.db.Create(d).Error
}

// Get returns a driver by ID
func (s *DriversStorage) Get(id string) (*model.Driver, error) {
	var d model.Driver
	if err := s.db.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	return &d, nil
}

// List returns all drivers, optionally restricted to a franchise
func (s *DriversStorage) List(franchiseID *string) ([]model.Driver, error) {
	var ds []model.Driver
	query := s.db.Model(&model.Driver{})
	if franchiseID != nil {
		query = query.Where("franchise_id = ?", *franchiseID)
	}
	if err := query.Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

// Update saves the passed driver
func (s *DriversStorage) Update(d *model.Driver) error {
	return s.db.Save(d).Error
}

// Delete removes a driver by ID
func (s *DriversStorage) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Driver{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	return nil
}

// UpdateStatus changes the status of a driver
func (s *DriversStorage) UpdateStatus(id string, status model.DriverStatus) error {
	return s.db.Transaction(
		func(tx *gorm.DB) error {
			var d model.Driver
			result := tx.Where("id = ?", id).First(&d)
			if result.Error != nil {
				return model.NotFoundErrorFmt("driver not found: %s", id)
			}
			d.Status = status
			return tx.Save(&d).Error
		},
	)
}

// IncrementWarningCount atomically increments warning_count by 1 and returns
// the post-increment value. The update turns into a single SQL-level +1 so
// concurrent increments converge; the read-back happens in the same
// transaction so the returned count is authoritative.
func (s *DriversStorage) IncrementWarningCount(id string) (int, error) {
	var count int
	err := s.db.Transaction(
		func(tx *gorm.DB) error {
			res := tx.Model(&model.Driver{}).Where("id = ?", id).
				UpdateColumn("warning_count", gorm.Expr("warning_count + ?", 1))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return model.NotFoundErrorFmt("driver not found: %s", id)
			}
			return tx.Model(&model.Driver{}).Where("id = ?", id).
				Pluck("warning_count", &count).Error
		},
	)
	return count, err
}

// IncrementComplaintCount atomically increments complaint_count by 1
func (s *DriversStorage) IncrementComplaintCount(id string) error {
	res := s.db.Model(&model.Driver{}).Where("id = ?", id).
		UpdateColumn("complaint_count", gorm.Expr("complaint_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	return nil
}

// Blacklist transitions a driver to TERMINATED and sets the blacklist flag.
// It is a no-op when the driver is already terminal; the returned bool
// reports whether this call performed the transition.
func (s *DriversStorage) Blacklist(id string) (fired bool, err error) {
	err = s.db.Transaction(
		func(tx *gorm.DB) error {
			var d model.Driver
			if res := tx.Where("id = ?", id).First(&d); res.Error != nil {
				return model.NotFoundErrorFmt("driver not found: %s", id)
			}
			if d.Terminal() {
				return nil
			}
			d.Status = model.DriverTerminated
			d.Blacklisted = true
			if err := tx.Save(&d).Error; err != nil {
				return err
			}
			fired = true
			return nil
		},
	)
	return fired, err
}

// CountByFranchise returns the number of drivers in a franchise
func (s *DriversStorage) CountByFranchise(franchiseID string) (int64, error) {
	var count int64
	err := s.db.Model(&model.Driver{}).Where("franchise_id = ?", franchiseID).Count(&count).Error
	return count, err
}

// CountTerminatedSince returns the number of drivers of a franchise that
// entered the terminal state since the passed time
func (s *DriversStorage) CountTerminatedSince(franchiseID string, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&model.Driver{}).
		Where("franchise_id = ? AND status = ? AND updated_at >= ?", franchiseID, model.DriverTerminated, since).
		Count(&count).Error
	return count, err
}
