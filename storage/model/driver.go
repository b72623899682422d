package model

import (
	"time"
)

// Driver represents a delivery driver employed by a franchise.
type Driver struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FranchiseID string `gorm:"index" json:"franchise_id"`
	Name        string `json:"name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Phone       string `json:"phone"`
	License     string `json:"license"`

	Status DriverStatus `json:"status"`
	// Blacklisted is set alongside a TERMINATED status when a driver is
	// auto-fired; a blacklisted driver cannot be re-hired by any franchise.
	Blacklisted bool `json:"blacklisted"`

	// WarningCount is only ever incremented by the discipline workflow;
	// deleting a warning does not decrement it.
	WarningCount   int `json:"warning_count"`
	ComplaintCount int `json:"complaint_count"`
}

// Terminal reports whether the driver is in a terminal employment state.
func (d Driver) Terminal() bool {
	return d.Blacklisted || d.Status.Terminal()
}
