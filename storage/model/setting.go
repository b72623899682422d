package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// SettingScopeGlobal holds platform-wide settings.
	SettingScopeGlobal = ""
	// SettingScopeFranchisePrefix prefixes a franchise ID to form the
	// per-franchise settings scope.
	SettingScopeFranchisePrefix = "franchise:"

	// SettingKeyWarningThreshold overrides the warning count at which a
	// driver or staff member is automatically fired.
	SettingKeyWarningThreshold = "warning_threshold"
)

// FranchiseScope returns the settings scope for the passed franchise ID.
func FranchiseScope(franchiseID string) string {
	return SettingScopeFranchisePrefix + franchiseID
}

// Setting stores arbitrary scoped key-value configuration.
//
// Values are serialized using GORM's json serializer, which leverages the
// database JSON type when available (e.g., PostgreSQL, MySQL) and falls back
// to TEXT in others (e.g., SQLite). The `Scope` field enables namespacing to
// avoid key collisions across tenants.
type Setting struct {
	CreatedAt int            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int            `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Scope allows grouping keys by namespace; empty string is global scope.
	Scope string `gorm:"primaryKey" json:"scope"`

	// Key is the identifier within a scope.
	Key string `gorm:"primaryKey" json:"key"`

	// Value is stored as native JSON/JSONB (where supported) using datatypes.JSON.
	Value datatypes.JSON `json:"value"`
}

// SettingsStore defines common operations for scoped settings storage.
type SettingsStore interface {
	// Get retrieves the value for a (scope, key). Returns (nil, nil) if not found.
	Get(scope, key string) (datatypes.JSON, error)

	// GetAs retrieves the value for a (scope, key) and unmarshals it into
	// target. Returns false if not found.
	GetAs(scope, key string, target any) (bool, error)

	// Set stores/replaces the value for a (scope, key).
	Set(scope, key string, value datatypes.JSON) error

	// SetAny marshals value to JSON and stores it for a (scope, key).
	SetAny(scope, key string, value any) error

	// Delete removes the entry for a (scope, key). No error if missing.
	Delete(scope, key string) error
}
