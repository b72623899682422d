package model

import (
	"time"
)

// Franchise is the multi-tenant root entity; every driver, staff member,
// warning and complaint belongs to exactly one franchise.
type Franchise struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `json:"name"`
	// Code is a short unique identifier used in URLs and reports
	Code   string `gorm:"uniqueIndex" json:"code"`
	City   string `json:"city"`
	Active bool   `json:"active"`
}
