package config

import (
	"github.com/pkg/errors"
	"github.com/zachmann/go-utils/fileutils"

	"github.com/tech-karippilly/drybros-app-sub006/internal/logger"
)

// loggingConf holds all logging-related configuration under the `logging`
// key.
//
// YAML example:
//
//	logging:
//	  dir: /var/log/drybros
//	  stderr: true
//	  level: INFO
type loggingConf struct {
	Dir    string `yaml:"dir"`
	StdErr bool   `yaml:"stderr"`
	// Level sets the verbosity for internal logs (e.g. DEBUG, INFO).
	Level string `yaml:"level"`
}

func (l *loggingConf) validate() error {
	if l.Dir != "" && !fileutils.FileExists(l.Dir) {
		return errors.Errorf("logging directory '%s' does not exist", l.Dir)
	}
	return nil
}

// LoggerConfig converts the yaml conf into the logger package's Config.
func (l loggingConf) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  l.Level,
		Dir:    l.Dir,
		StdErr: l.StdErr,
	}
}

var defaultLoggingConf = loggingConf{
	Level:  "INFO",
	StdErr: true,
}
