package service

import (
	"encoding/json"
	"sync"

	"github.com/fatih/structs"
	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/internal/geoip"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// ActivityEvent describes one audit entry to record.
type ActivityEvent struct {
	FranchiseID string
	Actor       *string
	Action      string
	EntityType  string
	EntityID    string
	Message     string
	// IP is the acting client's address; resolved to a country code when a
	// GeoIP database is configured.
	IP string
	// Metadata is an optional struct or map serialized into the JSON column.
	Metadata any
}

// Recorder writes audit entries through a bounded queue. Recording never
// blocks and never fails the caller: a full queue drops the entry, a failed
// write is logged locally.
type Recorder struct {
	store model.ActivityStore
	geo   *geoip.Resolver

	queue chan model.ActivityLog
	wg    sync.WaitGroup

	// mu orders Record sends against Close so a late Record drops the
	// entry instead of sending on the closed queue.
	mu     sync.RWMutex
	closed bool
}

// NewRecorder starts a Recorder with the passed queue size.
func NewRecorder(store model.ActivityStore, geo *geoip.Resolver, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = 256
	}
	r := &Recorder{
		store: store,
		geo:   geo,
		queue: make(chan model.ActivityLog, queueSize),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for entry := range r.queue {
		if err := r.store.Append(&entry); err != nil {
			log.WithError(err).WithField("action", entry.Action).Error("failed to write activity log")
		}
	}
}

// Record enqueues an event. Safe to call on a nil Recorder.
func (r *Recorder) Record(e ActivityEvent) {
	if r == nil {
		return
	}
	entry := model.ActivityLog{
		FranchiseID: e.FranchiseID,
		Actor:       e.Actor,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Message:     e.Message,
		Country:     r.geo.Country(e.IP),
	}
	if e.Metadata != nil {
		var asMap map[string]any
		switch m := e.Metadata.(type) {
		case map[string]any:
			asMap = m
		default:
			if structs.IsStruct(e.Metadata) {
				asMap = structs.Map(e.Metadata)
			}
		}
		if asMap != nil {
			if b, err := json.Marshal(asMap); err == nil {
				entry.Metadata = b
			}
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		log.WithField("action", e.Action).Warn("activity recorder closed, dropping entry")
		return
	}
	select {
	case r.queue <- entry:
	default:
		log.WithField("action", e.Action).Warn("activity queue full, dropping entry")
	}
}

// Close stops accepting entries and waits for the queue to drain.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	r.wg.Wait()
}
