package main

import (
	"encoding/json"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Legacy records as the pre-GORM deployments stored them. Values were
// msgpack encoded; very early databases used json, so both are accepted.

type legacyFranchise struct {
	ID     string `json:"id" msgpack:"id"`
	Name   string `json:"name" msgpack:"name"`
	Code   string `json:"code" msgpack:"code"`
	City   string `json:"city" msgpack:"city"`
	Active bool   `json:"active" msgpack:"active"`
}

type legacyDriver struct {
	ID           string `json:"id" msgpack:"id"`
	FranchiseID  string `json:"franchise_id" msgpack:"franchise_id"`
	Name         string `json:"name" msgpack:"name"`
	Email        string `json:"email" msgpack:"email"`
	Phone        string `json:"phone" msgpack:"phone"`
	License      string `json:"license" msgpack:"license"`
	Status       string `json:"status" msgpack:"status"`
	Blacklisted  bool   `json:"blacklisted" msgpack:"blacklisted"`
	WarningCount int    `json:"warning_count" msgpack:"warning_count"`
}

type legacyStaff struct {
	ID           string `json:"id" msgpack:"id"`
	FranchiseID  string `json:"franchise_id" msgpack:"franchise_id"`
	Name         string `json:"name" msgpack:"name"`
	Email        string `json:"email" msgpack:"email"`
	Phone        string `json:"phone" msgpack:"phone"`
	Role         string `json:"role" msgpack:"role"`
	Status       string `json:"status" msgpack:"status"`
	WarningCount int    `json:"warning_count" msgpack:"warning_count"`
}

type legacyWarning struct {
	ID          string     `json:"id" msgpack:"id"`
	DriverID    *string    `json:"driver_id" msgpack:"driver_id"`
	StaffID     *string    `json:"staff_id" msgpack:"staff_id"`
	FranchiseID string     `json:"franchise_id" msgpack:"franchise_id"`
	Reason      string     `json:"reason" msgpack:"reason"`
	Priority    string     `json:"priority" msgpack:"priority"`
	CreatedAt   *time.Time `json:"created_at" msgpack:"created_at"`
}

// decode understands both encodings: msgpack first, json as fallback for
// the earliest databases.
func decode(src []byte, target any) error {
	if err := msgpack.Unmarshal(src, target); err == nil {
		return nil
	}
	return json.Unmarshal(src, target)
}
