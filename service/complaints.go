package service

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// ComplaintService implements the complaint workflow. It shares the
// validation shape of the warning workflow but has no escalation: filing a
// complaint only bumps the driver's complaint counter (staff carry no
// complaint counter).
type ComplaintService struct {
	drivers    model.DriversStore
	staff      model.StaffStore
	complaints model.ComplaintsStore
	activity   *Recorder
}

// NewComplaintService wires a ComplaintService from the passed backends.
func NewComplaintService(backs model.Backends, activity *Recorder) *ComplaintService {
	return &ComplaintService{
		drivers:    backs.Drivers,
		staff:      backs.Staff,
		complaints: backs.Complaints,
		activity:   activity,
	}
}

// FileComplaintInput is the request of ComplaintService.File. Exactly one of
// DriverID/StaffID must be set.
type FileComplaintInput struct {
	DriverID    *string
	StaffID     *string
	Title       string
	Description string
	Severity    model.Severity
	CreatedBy   *string
	ActorIP     string
}

// File validates and persists a complaint. Like the warning workflow, only
// validation and a missing target are fatal; the counter increment and the
// activity log are best-effort.
func (s *ComplaintService) File(in FileComplaintInput) (*model.Complaint, error) {
	if (in.DriverID == nil) == (in.StaffID == nil) {
		return nil, ErrInvalidWarningTarget
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, model.ValidationError("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, model.ValidationError("description is required")
	}
	if in.Severity == "" {
		in.Severity = model.SeverityMedium
	}
	if !in.Severity.Valid() {
		return nil, model.ValidationErrorFmt("invalid severity: %s", in.Severity)
	}

	var franchiseID, targetID, entityType string
	if in.DriverID != nil {
		d, err := s.drivers.Get(*in.DriverID)
		if err != nil {
			return nil, err
		}
		franchiseID, targetID, entityType = d.FranchiseID, d.ID, "driver"
	} else {
		st, err := s.staff.Get(*in.StaffID)
		if err != nil {
			return nil, err
		}
		franchiseID, targetID, entityType = st.FranchiseID, st.ID, "staff"
	}

	complaint := &model.Complaint{
		DriverID:    in.DriverID,
		StaffID:     in.StaffID,
		FranchiseID: franchiseID,
		Title:       title,
		Description: in.Description,
		Severity:    in.Severity,
		Status:      model.ComplaintOpen,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.complaints.Create(complaint); err != nil {
		return nil, err
	}

	if in.DriverID != nil {
		if err := s.drivers.IncrementComplaintCount(targetID); err != nil {
			log.WithError(err).WithField("driver_id", targetID).Error("failed to increment complaint count")
		}
	}

	s.activity.Record(
		ActivityEvent{
			FranchiseID: franchiseID,
			Actor:       in.CreatedBy,
			Action:      model.ActionComplaintCreated,
			EntityType:  entityType,
			EntityID:    targetID,
			Message:     fmt.Sprintf("complaint filed: %s", title),
			IP:          in.ActorIP,
		},
	)
	return complaint, nil
}

// ResolutionInput carries the optional free-text resolution fields of a
// status update.
type ResolutionInput struct {
	Resolution       *string
	ResolutionAction *string
	ResolutionReason *string
}

// UpdateStatus sets the complaint's status. Transitions are deliberately
// unrestricted: any known status may be set from any prior status. Moving to
// RESOLVED or CLOSED stamps the resolution fields.
func (s *ComplaintService) UpdateStatus(
	id string, status model.ComplaintStatus, res ResolutionInput, actor *string, actorIP string,
) (*model.Complaint, error) {
	if !status.Valid() {
		return nil, model.ValidationErrorFmt("invalid status: %s", status)
	}
	complaint, err := s.complaints.Get(id)
	if err != nil {
		return nil, err
	}
	previous := complaint.Status
	complaint.Status = status
	if status.Resolving() {
		now := time.Now().UTC()
		complaint.ResolvedAt = &now
		complaint.ResolvedBy = actor
		if res.Resolution != nil {
			complaint.Resolution = res.Resolution
		}
		if res.ResolutionAction != nil {
			complaint.ResolutionAction = res.ResolutionAction
		}
		if res.ResolutionReason != nil {
			complaint.ResolutionReason = res.ResolutionReason
		}
	}
	if err := s.complaints.Update(complaint); err != nil {
		return nil, err
	}

	s.activity.Record(
		ActivityEvent{
			FranchiseID: complaint.FranchiseID,
			Actor:       actor,
			Action:      model.ActionComplaintStatus,
			EntityType:  "complaint",
			EntityID:    complaint.ID,
			Message:     fmt.Sprintf("complaint status changed from %s to %s", previous, status),
			IP:          actorIP,
		},
	)
	return complaint, nil
}

// List returns all complaints matching the filter.
func (s *ComplaintService) List(f model.ComplaintFilter) ([]model.Complaint, error) {
	return s.complaints.List(f)
}

// ListPage returns one page of complaints matching the filter.
func (s *ComplaintService) ListPage(f model.ComplaintFilter, p model.PageParams) (
	[]model.Complaint, model.Pagination, error,
) {
	return s.complaints.ListPage(f, p)
}

// Get returns a complaint by ID.
func (s *ComplaintService) Get(id string) (*model.Complaint, error) {
	return s.complaints.Get(id)
}

// Delete hard-deletes a complaint.
func (s *ComplaintService) Delete(id string) error {
	return s.complaints.Delete(id)
}
