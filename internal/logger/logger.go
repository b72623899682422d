// Package logger configures the process-wide logrus logger from the yaml
// logging configuration.
package logger

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Config controls where and how verbosely the internal logger writes.
type Config struct {
	// Level accepts standard log levels (e.g. DEBUG, INFO, WARN, ERROR).
	Level string
	// Dir, when set, appends logs to drybros.log in that directory.
	Dir string
	// StdErr duplicates log output to stderr.
	StdErr bool
}

// Init applies the passed Config to the global logrus logger.
func Init(c Config) error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(
		&log.TextFormatter{
			FullTimestamp: true,
		},
	)

	var writers []io.Writer
	if c.Dir != "" {
		f, err := os.OpenFile(
			filepath.Join(c.Dir, "drybros.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644,
		)
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}
	if c.StdErr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}
