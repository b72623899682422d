package storage

import (
	"database/sql"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// SettingsStorage implements model.SettingsStore using GORM.
type SettingsStorage struct {
	db *gorm.DB
}

// Get returns the JSON value for a (scope, key). If not found, returns nil, nil.
func (s *SettingsStorage) Get(scope, key string) (datatypes.JSON, error) {
	// Read the JSON/JSONB value as raw bytes to support scalar JSON (e.g., numbers).
	var raw []byte
	row := s.db.Model(&model.Setting{}).
		Select("value").
		Where(
			&model.Setting{
				Scope: scope,
				Key:   key,
			},
		).
		Row()
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return raw, nil
}

// GetAs retrieves the value for a (scope, key) and unmarshals it into
// target. Returns false if not found.
func (s *SettingsStorage) GetAs(scope, key string, target any) (bool, error) {
	raw, err := s.Get(scope, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

// Set upserts the JSON value for a (scope, key).
func (s *SettingsStorage) Set(scope, key string, value datatypes.JSON) error {
	setting := model.Setting{
		Scope: scope,
		Key:   key,
		Value: value,
	}
	return s.db.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{
				{Name: "scope"},
				{Name: "key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		},
	).Create(&setting).Error
}

// SetAny marshals value to JSON and stores it for a (scope, key).
func (s *SettingsStorage) SetAny(scope, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(scope, key, b)
}

// Delete removes the entry for a (scope, key). No error if missing.
// The row is removed for real: a soft-deleted row would still occupy the
// (scope, key) primary key and block a later Set from recreating the entry.
func (s *SettingsStorage) Delete(scope, key string) error {
	return s.db.Unscoped().Where("scope = ? AND key = ?", scope, key).Delete(&model.Setting{}).Error
}
