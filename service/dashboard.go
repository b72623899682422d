package service

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/internal/cache"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// Metrics are the per-franchise dashboard numbers.
type Metrics struct {
	FranchiseID     string    `json:"franchise_id" msgpack:"franchise_id"`
	Drivers         int64     `json:"drivers" msgpack:"drivers"`
	Staff           int64     `json:"staff" msgpack:"staff"`
	Warnings        int64     `json:"warnings" msgpack:"warnings"`
	OpenComplaints  int64     `json:"open_complaints" msgpack:"open_complaints"`
	FiredDrivers30d int64     `json:"fired_drivers_30d" msgpack:"fired_drivers_30d"`
	GeneratedAt     time.Time `json:"generated_at" msgpack:"generated_at"`
}

// DashboardService computes per-franchise metrics. The independent counts
// are issued concurrently and awaited jointly; results are cached briefly
// since dashboards poll.
type DashboardService struct {
	franchises model.FranchisesStore
	drivers    model.DriversStore
	staff      model.StaffStore
	warnings   model.WarningsStore
	complaints model.ComplaintsStore

	cache         cache.Cache
	cacheLifetime time.Duration
}

// NewDashboardService wires a DashboardService from the passed backends.
func NewDashboardService(backs model.Backends, metrics cache.Cache, lifetime time.Duration) *DashboardService {
	if lifetime <= 0 {
		lifetime = 30 * time.Second
	}
	return &DashboardService{
		franchises:    backs.Franchises,
		drivers:       backs.Drivers,
		staff:         backs.Staff,
		warnings:      backs.Warnings,
		complaints:    backs.Complaints,
		cache:         metrics,
		cacheLifetime: lifetime,
	}
}

// Metrics returns the dashboard numbers for a franchise, from cache when
// fresh enough.
func (s *DashboardService) Metrics(franchiseID string) (*Metrics, error) {
	cacheKey := "dashboard:metrics:" + franchiseID
	if s.cache != nil {
		var cached Metrics
		found, err := s.cache.Get(cacheKey, &cached)
		if err != nil {
			log.WithError(err).Debug("failed to read metrics cache")
		} else if found {
			return &cached, nil
		}
	}

	if _, err := s.franchises.Get(franchiseID); err != nil {
		return nil, err
	}

	m := Metrics{FranchiseID: franchiseID}
	openStatus := model.ComplaintOpen
	monthAgo := time.Now().AddDate(0, 0, -30)

	var wg sync.WaitGroup
	var mutex sync.Mutex
	var firstErr error
	fetch := func(dst *int64, load func() (int64, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := load()
			if err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
				return
			}
			*dst = v
		}()
	}
	fetch(&m.Drivers, func() (int64, error) { return s.drivers.CountByFranchise(franchiseID) })
	fetch(&m.Staff, func() (int64, error) { return s.staff.CountByFranchise(franchiseID) })
	fetch(
		&m.Warnings, func() (int64, error) {
			return s.warnings.Count(model.WarningFilter{FranchiseID: &franchiseID})
		},
	)
	fetch(
		&m.OpenComplaints, func() (int64, error) {
			return s.complaints.Count(model.ComplaintFilter{FranchiseID: &franchiseID, Status: &openStatus})
		},
	)
	fetch(
		&m.FiredDrivers30d, func() (int64, error) {
			return s.drivers.CountTerminatedSince(franchiseID, monthAgo)
		},
	)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	m.GeneratedAt = time.Now().UTC()

	if s.cache != nil {
		if err := s.cache.Set(cacheKey, m, s.cacheLifetime); err != nil {
			log.WithError(err).Debug("failed to write metrics cache")
		}
	}
	return &m, nil
}
