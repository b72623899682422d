// Package drybros assembles the HTTP application of the franchise
// management platform: a fiber server exposing the /api/v1 surface on top
// of the workflow services.
package drybros

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/api"
	"github.com/tech-karippilly/drybros-app-sub006/internal/version"
	"github.com/tech-karippilly/drybros-app-sub006/service"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// FiberServerConfig is the fiber.Config that is used to init the http fiber.App
var FiberServerConfig = fiber.Config{
	ReadTimeout:    3 * time.Second,
	WriteTimeout:   20 * time.Second,
	IdleTimeout:    150 * time.Second,
	ReadBufferSize: 8192,
	ErrorHandler:   handleError,
	Network:        "tcp",
}

// handleError is the fiber error handler: fiber errors keep their status,
// storage errors map onto the API taxonomy, everything else becomes a 500.
func handleError(ctx *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case *fiber.Error:
		return ctx.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	case model.ValidationError:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": e.Error()})
	case model.NotFoundError:
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": e.Error()})
	case model.AlreadyExistsError:
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": e.Error()})
	default:
		log.WithError(err).WithField("path", ctx.Path()).Error("unhandled error")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// App is the assembled HTTP application.
type App struct {
	server     *fiber.App
	serverConf ServerConf
	services   *service.Services
}

// NewApp builds the fiber app, mounts the middleware stack and registers
// the API under /api/v1.
func NewApp(
	serverConf ServerConf, backs model.Backends, svcs *service.Services, authCfg api.AuthConfig,
) *App {
	if tps := serverConf.TrustedProxies; len(tps) > 0 {
		FiberServerConfig.TrustedProxies = tps
		FiberServerConfig.EnableTrustedProxyCheck = true
	}
	FiberServerConfig.ProxyHeader = serverConf.ForwardedIPHeader
	server := fiber.New(FiberServerConfig)
	server.Use(recover.New())
	server.Use(compress.New())
	server.Use(logger.New())
	server.Use(requestid.New())

	server.Get(
		"/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok", "version": version.VERSION})
		},
	)
	api.Register(server.Group("/api/v1"), backs, svcs, authCfg)

	return &App{
		server:     server,
		serverConf: serverConf,
		services:   svcs,
	}
}

// Listen starts the http server on the given address; only utilized in tests
func (a *App) Listen(addr string) error {
	return a.server.Listen(addr)
}

// Server exposes the underlying fiber app.
func (a *App) Server() *fiber.App {
	return a.server
}

// Start runs the server according to the server configuration. It blocks
// and fatals when the listener fails.
func (a *App) Start() {
	conf := a.serverConf
	if !conf.TLS.Enabled {
		log.WithField("port", conf.Port).Info("TLS is disabled starting http server")
		log.WithError(a.server.Listen(fmt.Sprintf("%s:%d", conf.IPListen, conf.Port))).Fatal()
	}
	if conf.TLS.RedirectHTTP {
		httpServer := fiber.New(FiberServerConfig)
		httpServer.All(
			"*", func(ctx *fiber.Ctx) error {
				return ctx.Redirect(
					strings.Replace(ctx.Request().URI().String(), "http://", "https://", 1),
					fiber.StatusPermanentRedirect,
				)
			},
		)
		log.Info("TLS and http redirect enabled, starting redirect server on port 80")
		go func() {
			log.WithError(httpServer.Listen(":80")).Fatal()
		}()
	}
	log.Info("TLS enabled, starting https server on port 443")
	log.WithError(a.server.ListenTLS(":443", conf.TLS.Cert, conf.TLS.Key)).Fatal()
}
