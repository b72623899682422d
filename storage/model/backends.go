package model

import (
	"time"
)

// FranchisesStore abstracts CRUD for franchises.
type FranchisesStore interface {
	Create(f *Franchise) error
	Get(id string) (*Franchise, error)
	List() ([]Franchise, error)
	Update(f *Franchise) error
	Delete(id string) error
}

// DriversStore abstracts persistence for drivers, including the counter and
// status primitives the discipline workflow depends on.
type DriversStore interface {
	Create(d *Driver) error
	// Get returns the driver or a NotFoundError.
	Get(id string) (*Driver, error)
	List(franchiseID *string) ([]Driver, error)
	Update(d *Driver) error
	Delete(id string) error
	UpdateStatus(id string, status DriverStatus) error
	// IncrementWarningCount atomically increments warning_count by 1 and
	// returns the post-increment value.
	IncrementWarningCount(id string) (int, error)
	// IncrementComplaintCount atomically increments complaint_count by 1.
	IncrementComplaintCount(id string) error
	// Blacklist transitions the driver to TERMINATED+blacklisted. It is
	// idempotent and reports whether this call performed the transition.
	Blacklist(id string) (bool, error)
	CountByFranchise(franchiseID string) (int64, error)
	CountTerminatedSince(franchiseID string, since time.Time) (int64, error)
}

// StaffStore abstracts persistence for staff members.
type StaffStore interface {
	Create(s *Staff) error
	// Get returns the staff member or a NotFoundError.
	Get(id string) (*Staff, error)
	List(franchiseID *string) ([]Staff, error)
	Update(s *Staff) error
	Delete(id string) error
	UpdateStatus(id string, status StaffStatus) error
	// IncrementWarningCount atomically increments warning_count by 1 and
	// returns the post-increment value.
	IncrementWarningCount(id string) (int, error)
	// Fire transitions the staff member to FIRED. It is idempotent and
	// reports whether this call performed the transition.
	Fire(id string) (bool, error)
	CountByFranchise(franchiseID string) (int64, error)
}

// WarningsStore abstracts persistence for warnings.
type WarningsStore interface {
	Create(w *Warning) error
	// Get returns the warning or a NotFoundError.
	Get(id string) (*Warning, error)
	List(f WarningFilter) ([]Warning, error)
	ListPage(f WarningFilter, p PageParams) ([]Warning, Pagination, error)
	// Delete hard-deletes the warning or returns a NotFoundError.
	Delete(id string) error
	Count(f WarningFilter) (int64, error)
}

// ComplaintsStore abstracts persistence for complaints.
type ComplaintsStore interface {
	Create(c *Complaint) error
	// Get returns the complaint or a NotFoundError.
	Get(id string) (*Complaint, error)
	List(f ComplaintFilter) ([]Complaint, error)
	ListPage(f ComplaintFilter, p PageParams) ([]Complaint, Pagination, error)
	Update(c *Complaint) error
	// Delete hard-deletes the complaint or returns a NotFoundError.
	Delete(id string) error
	Count(f ComplaintFilter) (int64, error)
}

// ActivityStore abstracts persistence for the audit trail.
type ActivityStore interface {
	Append(e *ActivityLog) error
	ListPage(franchiseID *string, p PageParams) ([]ActivityLog, Pagination, error)
}

// Backends groups the storage backends the services are wired with.
type Backends struct {
	Franchises FranchisesStore
	Drivers    DriversStore
	Staff      StaffStore
	Warnings   WarningsStore
	Complaints ComplaintsStore
	Activity   ActivityStore
	Settings   SettingsStore
	Users      UsersStore
}
