package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// Storage is a GORM-based storage implementation
type Storage struct {
	db         *gorm.DB
	userParams Argon2idParams
}

var models = []any{
	&model.Franchise{},
	&model.Driver{},
	&model.Staff{},
	&model.Warning{},
	&model.Complaint{},
	&model.ActivityLog{},
	&model.Setting{},
	&model.User{},
}

// NewStorage creates a new GORM-based storage
func NewStorage(config Config) (*Storage, error) {
	db, err := Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate the schemas
	if err = db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Fill user hash params with defaults if zero values
	params := config.UsersHash
	if params.Time == 0 {
		params = defaultArgon2idParams()
	}

	return &Storage{
		db:         db,
		userParams: params,
	}, nil
}

// Migrate runs the schema auto-migration without constructing accessors.
func Migrate(config Config) error {
	db, err := Connect(config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return db.AutoMigrate(models...)
}

// FranchisesStorage returns a FranchisesStorage
func (s *Storage) FranchisesStorage() *FranchisesStorage {
	return &FranchisesStorage{db: s.db}
}

// DriversStorage returns a DriversStorage
func (s *Storage) DriversStorage() *DriversStorage {
	return &DriversStorage{db: s.db}
}

// StaffStorage returns a StaffStorage
func (s *Storage) StaffStorage() *StaffStorage {
	return &StaffStorage{db: s.db}
}

// WarningsStorage returns a WarningsStorage
func (s *Storage) WarningsStorage() *WarningsStorage {
	return &WarningsStorage{db: s.db}
}

// ComplaintsStorage returns a ComplaintsStorage
func (s *Storage) ComplaintsStorage() *ComplaintsStorage {
	return &ComplaintsStorage{db: s.db}
}

// ActivityStorage returns an ActivityStorage
func (s *Storage) ActivityStorage() *ActivityStorage {
	return &ActivityStorage{db: s.db}
}

// SettingsStorage returns a SettingsStorage
func (s *Storage) SettingsStorage() *SettingsStorage {
	return &SettingsStorage{db: s.db}
}

// UsersStorage returns a UsersStorage
func (s *Storage) UsersStorage() *UsersStorage {
	return &UsersStorage{db: s.db, params: s.userParams}
}

// LoadStorageBackends initializes a warehouse and returns grouped backends.
func LoadStorageBackends(cfg Config) (model.Backends, error) {
	warehouse, err := NewStorage(cfg)
	if err != nil {
		return model.Backends{}, err
	}
	return model.Backends{
		Franchises: warehouse.FranchisesStorage(),
		Drivers:    warehouse.DriversStorage(),
		Staff:      warehouse.StaffStorage(),
		Warnings:   warehouse.WarningsStorage(),
		Complaints: warehouse.ComplaintsStorage(),
		Activity:   warehouse.ActivityStorage(),
		Settings:   warehouse.SettingsStorage(),
		Users:      warehouse.UsersStorage(),
	}, nil
}
