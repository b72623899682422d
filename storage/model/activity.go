package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity action identifiers written by the services.
const (
	ActionWarningIssued    = "warning.issued"
	ActionWarningDeleted   = "warning.deleted"
	ActionAutoFired        = "discipline.auto_fired"
	ActionComplaintCreated = "complaint.created"
	ActionComplaintStatus  = "complaint.status_changed"
)

// ActivityLog is a best-effort audit record. Writes go through a bounded
// queue and are never allowed to fail a request.
type ActivityLog struct {
	gorm.Model
	FranchiseID string  `gorm:"index" json:"franchise_id"`
	Actor       *string `json:"actor,omitempty"`
	Action      string  `gorm:"index" json:"action"`
	EntityType  string  `json:"entity_type"`
	EntityID    string  `json:"entity_id"`
	Message     string  `json:"message"`
	// Country is the ISO code of the acting client's IP, when a GeoIP
	// database is configured.
	Country string `json:"country,omitempty"`
	// Metadata is stored as native JSON/JSONB (where supported) using datatypes.JSON.
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}
