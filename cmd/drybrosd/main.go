package main

import (
	"os"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	drybros "github.com/tech-karippilly/drybros-app-sub006"
	"github.com/tech-karippilly/drybros-app-sub006/api"
	"github.com/tech-karippilly/drybros-app-sub006/cmd/drybrosd/config"
	"github.com/tech-karippilly/drybros-app-sub006/internal/cache"
	"github.com/tech-karippilly/drybros-app-sub006/internal/geoip"
	"github.com/tech-karippilly/drybros-app-sub006/internal/logger"
	"github.com/tech-karippilly/drybros-app-sub006/service"
)

func main() {
	var configFile string
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	config.Load(configFile)
	c := config.Get()
	if err := logger.Init(c.Logging.LoggerConfig()); err != nil {
		log.WithError(err).Fatal("could not init logger")
	}
	log.Info("Loaded Config")

	metrics := cache.NewMemory()
	if addr := c.Caching.RedisAddr; addr != "" && !c.Caching.Disabled {
		redisCache, err := cache.NewRedis(
			&redis.Options{
				Addr:     addr,
				Username: c.Caching.Username,
				Password: c.Caching.Password,
				DB:       c.Caching.RedisDB,
			},
		)
		if err != nil {
			log.WithError(err).Fatal("could not init redis cache")
		}
		metrics = redisCache
		log.Info("Loaded Redis Cache")
	}

	var geo *geoip.Resolver
	if c.GeoIPDB != "" {
		var err error
		geo, err = geoip.Open(c.GeoIPDB)
		if err != nil {
			log.WithError(err).Fatal("could not open geoip database")
		}
		defer geo.Close()
		log.Info("Loaded GeoIP database")
	}

	backs, err := config.LoadStorageBackends(c.Storage, c.API.Argon2idParams)
	if err != nil {
		log.Fatal(err)
	}

	svcs := service.New(backs, metrics, geo, c.Discipline.ServiceConfig())
	defer svcs.Close()

	app := drybros.NewApp(
		c.Server, backs, svcs,
		api.AuthConfig{
			Secret:        []byte(c.API.AuthSecret),
			TokenLifetime: c.API.TokenLifetime.Duration(),
		},
	)
	log.Info("Initialized Server")

	app.Start()
}
