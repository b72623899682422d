package config

import (
	"time"

	"github.com/zachmann/go-utils/duration"

	"github.com/tech-karippilly/drybros-app-sub006/service"
)

// disciplineConf tunes the warning escalation workflow.
//
// YAML example:
//
//	discipline:
//	  warning_threshold: 3
//	  activity_queue_size: 256
//	  metrics_cache_lifetime: 30s
type disciplineConf struct {
	// WarningThreshold is the warning count at which a driver or staff
	// member is automatically fired; franchises may override it.
	WarningThreshold     int                     `yaml:"warning_threshold"`
	ActivityQueueSize    int                     `yaml:"activity_queue_size"`
	MetricsCacheLifetime duration.DurationOption `yaml:"metrics_cache_lifetime"`
}

// ServiceConfig converts the yaml conf into the service package's Config.
func (c disciplineConf) ServiceConfig() service.Config {
	return service.Config{
		WarningThreshold:     c.WarningThreshold,
		ActivityQueueSize:    c.ActivityQueueSize,
		MetricsCacheLifetime: c.MetricsCacheLifetime.Duration(),
	}
}

var defaultDisciplineConf = disciplineConf{
	WarningThreshold:     service.DefaultWarningThreshold,
	ActivityQueueSize:    256,
	MetricsCacheLifetime: duration.DurationOption(30 * time.Second),
}
