// Package config loads and validates the yaml configuration of the drybrosd
// server.
package config

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/fileutils"
	"gopkg.in/yaml.v3"

	drybros "github.com/tech-karippilly/drybros-app-sub006"
)

// Config holds the whole drybrosd configuration.
type Config struct {
	Server     drybros.ServerConf `yaml:"server"`
	Logging    loggingConf        `yaml:"logging"`
	Storage    storageConf        `yaml:"storage"`
	Caching    cachingConf        `yaml:"caching"`
	API        apiConf            `yaml:"api"`
	Discipline disciplineConf     `yaml:"discipline"`
	GeoIPDB    string             `yaml:"geoip_db"`
}

var conf *Config

// Get returns the loaded Config.
func Get() *Config {
	return conf
}

var possibleConfigLocations = []string{
	"config.yaml",
	"config.yml",
	"/etc/drybros/config.yaml",
	"/etc/drybros/config.yml",
}

// Load reads the configuration from the passed file, or from the first
// existing default location when the passed path is empty. It fatals on any
// error since the server cannot run unconfigured.
func Load(file string) {
	if file == "" {
		for _, loc := range possibleConfigLocations {
			if fileutils.FileExists(loc) {
				file = loc
				break
			}
		}
	}
	if file == "" {
		log.Fatal("no config file found")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.WithError(err).Fatal("could not read config file")
	}
	c := Config{
		Logging:    defaultLoggingConf,
		Storage:    defaultStorageConf,
		API:        defaultAPIConf,
		Discipline: defaultDisciplineConf,
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		log.WithError(err).Fatal("could not parse config file")
	}
	if err = c.validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	conf = &c
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Server.TLS.Enabled {
		return errors.New("error in server conf: port must be specified")
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	if err := c.Storage.validate(); err != nil {
		return err
	}
	return c.API.validate()
}
