package model

import (
	"time"
)

// Staff represents a non-driving franchise employee (counter, laundry,
// manager on duty).
type Staff struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FranchiseID string `gorm:"index" json:"franchise_id"`
	Name        string `json:"name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`

	Status StaffStatus `json:"status"`

	// WarningCount is only ever incremented by the discipline workflow.
	// Staff have no complaint counter.
	WarningCount int `json:"warning_count"`
}
