package config

import (
	"github.com/pkg/errors"
	"github.com/zachmann/go-utils/duration"

	"github.com/tech-karippilly/drybros-app-sub006/storage"
)

// apiConf holds API-related configuration
type apiConf struct {
	// AuthSecret signs the issued bearer tokens. Required; the server does
	// not generate one so tokens survive restarts.
	AuthSecret string `yaml:"auth_secret"`
	// TokenLifetime bounds issued tokens.
	TokenLifetime  duration.DurationOption `yaml:"token_lifetime"`
	Argon2idParams storage.Argon2idParams  `yaml:"password_hashing"`
}

func (c *apiConf) validate() error {
	if c.AuthSecret == "" {
		return errors.New("error in api conf: auth_secret must be specified")
	}
	return nil
}

var defaultAPIConf = apiConf{
	Argon2idParams: storage.Argon2idParams{
		Time:        1,
		MemoryKiB:   64 * 1024,
		Parallelism: 4,
		KeyLen:      64,
		SaltLen:     32,
	},
}
