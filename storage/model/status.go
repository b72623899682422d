package model

// DriverStatus describes the employment state of a driver.
// StatusTerminated is terminal.
type DriverStatus string

// Constants for DriverStatus
const (
	DriverActive     DriverStatus = "ACTIVE"
	DriverInactive   DriverStatus = "INACTIVE"
	DriverSuspended  DriverStatus = "SUSPENDED"
	DriverTerminated DriverStatus = "TERMINATED"
)

// Valid reports whether the status is one of the defined constants.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverActive, DriverInactive, DriverSuspended, DriverTerminated:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status is a terminal employment state.
func (s DriverStatus) Terminal() bool {
	return s == DriverTerminated
}

// StaffStatus describes the employment state of a staff member.
// StaffFired is terminal.
type StaffStatus string

// Constants for StaffStatus
const (
	StaffActive  StaffStatus = "ACTIVE"
	StaffOnLeave StaffStatus = "ON_LEAVE"
	StaffFired   StaffStatus = "FIRED"
)

// Valid reports whether the status is one of the defined constants.
func (s StaffStatus) Valid() bool {
	switch s {
	case StaffActive, StaffOnLeave, StaffFired:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status is a terminal employment state.
func (s StaffStatus) Terminal() bool {
	return s == StaffFired
}

// Priority is the priority of a warning.
type Priority string

// Constants for Priority
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether the priority is one of the defined constants.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Severity is the severity of a complaint.
type Severity string

// Constants for Severity
const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Valid reports whether the severity is one of the defined constants.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// ComplaintStatus describes where a complaint is in its lifecycle.
// Transitions are not restricted; any known status may be set from any
// prior status.
type ComplaintStatus string

// Constants for ComplaintStatus
const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

// Valid reports whether the status is one of the defined constants.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	default:
		return false
	}
}

// Resolving reports whether setting this status closes out the complaint and
// should stamp the resolution fields.
func (s ComplaintStatus) Resolving() bool {
	return s == ComplaintResolved || s == ComplaintClosed
}
