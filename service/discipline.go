package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// maxReasonLength caps the free-text reason of a warning, in characters.
const maxReasonLength = 500

// ErrInvalidWarningTarget is returned when not exactly one of driverId and
// staffId is supplied.
var ErrInvalidWarningTarget = model.ValidationError("Either driverId or staffId must be provided, but not both")

// WarningService implements the disciplinary warning workflow: issuing a
// warning increments the target's counter and automatically fires the
// driver or staff member once the counter reaches the franchise's threshold.
type WarningService struct {
	drivers  model.DriversStore
	staff    model.StaffStore
	warnings model.WarningsStore
	settings model.SettingsStore
	activity *Recorder

	defaultThreshold int
}

// NewWarningService wires a WarningService from the passed backends.
func NewWarningService(backs model.Backends, activity *Recorder, cfg Config) *WarningService {
	cfg = cfg.withDefaults()
	return &WarningService{
		drivers:          backs.Drivers,
		staff:            backs.Staff,
		warnings:         backs.Warnings,
		settings:         backs.Settings,
		activity:         activity,
		defaultThreshold: cfg.WarningThreshold,
	}
}

// IssueWarningInput is the request of WarningService.Issue. Exactly one of
// DriverID/StaffID must be set.
type IssueWarningInput struct {
	DriverID  *string
	StaffID   *string
	Reason    string
	Priority  model.Priority
	CreatedBy *string
	// ActorIP is only used for audit enrichment.
	ActorIP string
}

// IssueWarningResult is the response of WarningService.Issue.
type IssueWarningResult struct {
	Message   string
	Warning   *model.Warning
	AutoFired bool
}

// Threshold returns the auto-fire threshold for the passed franchise: the
// per-franchise settings override when present, the configured default
// otherwise.
func (s *WarningService) Threshold(franchiseID string) int {
	threshold := s.defaultThreshold
	if s.settings == nil {
		return threshold
	}
	var override int
	found, err := s.settings.GetAs(model.FranchiseScope(franchiseID), model.SettingKeyWarningThreshold, &override)
	if err != nil {
		log.WithError(err).WithField("franchise_id", franchiseID).Error("failed to read warning threshold override")
		return threshold
	}
	if found && override > 0 {
		threshold = override
	}
	return threshold
}

// Issue runs the warning workflow. Only validation failures and a missing
// target are fatal; the counter increment, the auto-fire write and the
// activity log are each best-effort so a single call degrades gracefully
// instead of failing outright. A failed increment therefore leaves the
// persisted counter behind the number of stored warnings; this is accepted
// and logged, not reconciled.
func (s *WarningService) Issue(in IssueWarningInput) (*IssueWarningResult, error) {
	if (in.DriverID == nil) == (in.StaffID == nil) {
		return nil, ErrInvalidWarningTarget
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, model.ValidationError("reason is required")
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, model.ValidationErrorFmt("reason must be at most %d characters", maxReasonLength)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, model.ValidationErrorFmt("invalid priority: %s", in.Priority)
	}

	var (
		franchiseID string
		priorCount  int
		subject     string
		targetID    string
	)
	if in.DriverID != nil {
		d, err := s.drivers.Get(*in.DriverID)
		if err != nil {
			return nil, err
		}
		franchiseID, priorCount, subject, targetID = d.FranchiseID, d.WarningCount, "Driver", d.ID
	} else {
		st, err := s.staff.Get(*in.StaffID)
		if err != nil {
			return nil, err
		}
		franchiseID, priorCount, subject, targetID = st.FranchiseID, st.WarningCount, "Staff member", st.ID
	}

	warning := &model.Warning{
		DriverID:    in.DriverID,
		StaffID:     in.StaffID,
		FranchiseID: franchiseID,
		Reason:      reason,
		Priority:    in.Priority,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.warnings.Create(warning); err != nil {
		return nil, err
	}

	// The increment returns the authoritative post-increment value; on
	// failure the workflow continues with the locally computed count so the
	// created warning is never rolled back.
	newCount := priorCount + 1
	var incErr error
	var count int
	if in.DriverID != nil {
		count, incErr = s.drivers.IncrementWarningCount(targetID)
	} else {
		count, incErr = s.staff.IncrementWarningCount(targetID)
	}
	if incErr != nil {
		log.WithError(incErr).WithFields(
			log.Fields{
				"warning_id": warning.ID,
				"target_id":  targetID,
			},
		).Error("failed to increment warning count")
	} else {
		newCount = count
	}

	threshold := s.Threshold(franchiseID)
	autoFired := false
	if newCount >= threshold {
		var fired bool
		var fireErr error
		if in.DriverID != nil {
			fired, fireErr = s.drivers.Blacklist(targetID)
		} else {
			fired, fireErr = s.staff.Fire(targetID)
		}
		if fireErr != nil {
			log.WithError(fireErr).WithField("target_id", targetID).Error("failed to auto-fire warning target")
		} else {
			autoFired = fired
		}
	}

	message := "Warning issued successfully"
	if autoFired {
		message = fmt.Sprintf("%s has been automatically fired due to %d warnings", subject, threshold)
	}

	s.activity.Record(
		ActivityEvent{
			FranchiseID: franchiseID,
			Actor:       in.CreatedBy,
			Action:      model.ActionWarningIssued,
			EntityType:  warningEntityType(in),
			EntityID:    targetID,
			Message:     fmt.Sprintf("warning issued: %s", reason),
			IP:          in.ActorIP,
			Metadata: warningMetadata{
				WarningID:    warning.ID,
				Priority:     string(in.Priority),
				WarningCount: newCount,
				Threshold:    threshold,
			},
		},
	)
	if autoFired {
		s.activity.Record(
			ActivityEvent{
				FranchiseID: franchiseID,
				Actor:       in.CreatedBy,
				Action:      model.ActionAutoFired,
				EntityType:  warningEntityType(in),
				EntityID:    targetID,
				Message:     message,
				IP:          in.ActorIP,
			},
		)
	}

	return &IssueWarningResult{
		Message:   message,
		Warning:   warning,
		AutoFired: autoFired,
	}, nil
}

type warningMetadata struct {
	WarningID    string `structs:"warning_id"`
	Priority     string `structs:"priority"`
	WarningCount int    `structs:"warning_count"`
	Threshold    int    `structs:"threshold"`
}

func warningEntityType(in IssueWarningInput) string {
	if in.DriverID != nil {
		return "driver"
	}
	return "staff"
}

// List returns all warnings matching the filter.
func (s *WarningService) List(f model.WarningFilter) ([]model.Warning, error) {
	return s.warnings.List(f)
}

// ListPage returns one page of warnings matching the filter.
func (s *WarningService) ListPage(f model.WarningFilter, p model.PageParams) (
	[]model.Warning, model.Pagination, error,
) {
	return s.warnings.ListPage(f, p)
}

// Get returns a warning by ID.
func (s *WarningService) Get(id string) (*model.Warning, error) {
	return s.warnings.Get(id)
}

// Delete hard-deletes a warning. The target's warning counter is not
// decremented; the counter is not reversible through this workflow.
func (s *WarningService) Delete(id string, actor *string, actorIP string) error {
	w, err := s.warnings.Get(id)
	if err != nil {
		return err
	}
	if err := s.warnings.Delete(id); err != nil {
		return err
	}
	s.activity.Record(
		ActivityEvent{
			FranchiseID: w.FranchiseID,
			Actor:       actor,
			Action:      model.ActionWarningDeleted,
			EntityType:  "warning",
			EntityID:    w.ID,
			Message:     "warning deleted",
			IP:          actorIP,
		},
	)
	return nil
}
