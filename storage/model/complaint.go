package model

import (
	"time"
)

// Complaint is a customer or internal complaint filed against exactly one of
// a driver or a staff member. Unlike warnings, complaints carry a lifecycle
// status and resolution fields.
type Complaint struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DriverID *string `gorm:"index" json:"driver_id,omitempty"`
	StaffID  *string `gorm:"index" json:"staff_id,omitempty"`

	FranchiseID string `gorm:"index" json:"franchise_id"`

	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    Severity        `json:"severity"`
	Status      ComplaintStatus `gorm:"index" json:"status"`

	// Resolution fields are stamped when the status moves to RESOLVED or
	// CLOSED; the free-text fields are optional.
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy       *string    `json:"resolved_by,omitempty"`
	Resolution       *string    `json:"resolution,omitempty"`
	ResolutionAction *string    `json:"resolution_action,omitempty"`
	ResolutionReason *string    `json:"resolution_reason,omitempty"`

	CreatedBy *string `json:"created_by,omitempty"`
}

// ComplaintFilter narrows complaint listings.
type ComplaintFilter struct {
	DriverID    *string
	StaffID     *string
	FranchiseID *string
	Status      *ComplaintStatus
}
