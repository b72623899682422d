package model

import (
	"time"
)

// Warning is a disciplinary warning issued against exactly one of a driver
// or a staff member. Warnings are immutable after creation; the only
// lifecycle operations are create and hard delete.
type Warning struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Exactly one of DriverID/StaffID is set; the other is null.
	DriverID *string `gorm:"index" json:"driver_id,omitempty"`
	StaffID  *string `gorm:"index" json:"staff_id,omitempty"`

	// FranchiseID is denormalized from the target entity for audit queries.
	FranchiseID string `gorm:"index" json:"franchise_id"`

	Reason   string   `json:"reason"`
	Priority Priority `json:"priority"`

	CreatedBy *string `json:"created_by,omitempty"`
}

// WarningFilter narrows warning listings.
type WarningFilter struct {
	DriverID    *string
	StaffID     *string
	FranchiseID *string
}
