package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// AuthConfig configures the login endpoint and the bearer middleware.
type AuthConfig struct {
	// Secret signs the issued HS256 tokens. Required once users exist.
	Secret []byte
	// TokenLifetime bounds issued tokens; defaults to 24h.
	TokenLifetime time.Duration
}

func (c AuthConfig) lifetime() time.Duration {
	if c.TokenLifetime <= 0 {
		return 24 * time.Hour
	}
	return c.TokenLifetime
}

const localsUser = "auth_user"

// currentUser returns the authenticated user, or nil while the API runs
// open (no users configured yet).
func currentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(localsUser).(*model.User)
	return u
}

// registerLogin mounts POST /auth/login, which exchanges credentials for a
// bearer token.
func registerLogin(r fiber.Router, users model.UsersStore, cfg AuthConfig) {
	type loginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	type loginRes struct {
		Token     string      `json:"token"`
		ExpiresAt time.Time   `json:"expires_at"`
		User      *model.User `json:"user"`
	}
	r.Post(
		"/auth/login", func(c *fiber.Ctx) error {
			var req loginReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			u, err := users.Authenticate(req.Username, req.Password)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(apiError{Error: "invalid credentials"})
			}
			expires := time.Now().Add(cfg.lifetime())
			tok, err := jwt.NewBuilder().
				Subject(u.Username).
				IssuedAt(time.Now()).
				Expiration(expires).
				Build()
			if err != nil {
				return renderError(c, err)
			}
			signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), cfg.Secret))
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(loginRes{Token: string(signed), ExpiresAt: expires, User: u})
		},
	)
}

// authMiddleware guards the API once users exist. While no users are
// configured all requests are allowed, so a fresh deployment can bootstrap
// its first admin through the API itself.
func authMiddleware(users model.UsersStore, cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := users.Count()
		if err != nil {
			return renderError(c, err)
		}
		if count == 0 {
			return c.Next()
		}

		raw := bearerToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(apiError{Error: "missing bearer token"})
		}
		tok, err := jwt.Parse(
			[]byte(raw), jwt.WithKey(jwa.HS256(), cfg.Secret), jwt.WithValidate(true),
		)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(apiError{Error: "invalid token"})
		}
		username, ok := tok.Subject()
		if !ok || username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(apiError{Error: "invalid token"})
		}
		u, err := users.Get(username)
		if err != nil || u.Disabled {
			return c.Status(fiber.StatusUnauthorized).JSON(apiError{Error: "invalid token"})
		}
		c.Locals(localsUser, u)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	auth := string(c.Request().Header.Peek(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// requireAdmin rejects non-admin users; open mode (no users) passes.
func requireAdmin(c *fiber.Ctx) error {
	u := currentUser(c)
	if u != nil && u.Role != model.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "admin role required"})
	}
	return c.Next()
}
