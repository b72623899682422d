// Package service implements the business workflows of the platform on top
// of the storage backends: disciplinary warnings with auto-fire escalation,
// complaints, dashboard metrics and the audit trail.
package service

import (
	"time"

	"github.com/tech-karippilly/drybros-app-sub006/internal/cache"
	"github.com/tech-karippilly/drybros-app-sub006/internal/geoip"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// DefaultWarningThreshold is the warning count at which a driver or staff
// member is automatically fired, unless overridden per franchise.
const DefaultWarningThreshold = 3

// Config carries the tunables of the service layer.
type Config struct {
	// WarningThreshold is the global auto-fire threshold; franchises may
	// override it via settings.
	WarningThreshold int
	// ActivityQueueSize bounds the fire-and-forget activity queue.
	ActivityQueueSize int
	// MetricsCacheLifetime is how long dashboard metrics stay cached.
	MetricsCacheLifetime time.Duration
}

func (c Config) withDefaults() Config {
	if c.WarningThreshold <= 0 {
		c.WarningThreshold = DefaultWarningThreshold
	}
	if c.ActivityQueueSize <= 0 {
		c.ActivityQueueSize = 256
	}
	if c.MetricsCacheLifetime <= 0 {
		c.MetricsCacheLifetime = 30 * time.Second
	}
	return c
}

// Services groups the constructed workflow services.
type Services struct {
	Warnings   *WarningService
	Complaints *ComplaintService
	Dashboard  *DashboardService
	Activity   *Recorder
}

// New wires the services with the passed backends. geo may be nil; metrics
// is required (use cache.NewMemory() when redis is not configured).
func New(backs model.Backends, metrics cache.Cache, geo *geoip.Resolver, cfg Config) *Services {
	cfg = cfg.withDefaults()
	recorder := NewRecorder(backs.Activity, geo, cfg.ActivityQueueSize)
	return &Services{
		Warnings:   NewWarningService(backs, recorder, cfg),
		Complaints: NewComplaintService(backs, recorder),
		Dashboard:  NewDashboardService(backs, metrics, cfg.MetricsCacheLifetime),
		Activity:   recorder,
	}
}

// Close drains and stops the background workers.
func (s *Services) Close() {
	if s.Activity != nil {
		s.Activity.Close()
	}
}
