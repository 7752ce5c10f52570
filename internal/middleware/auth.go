package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/config"
	"tacticlens/internal/models"
)

// SessionUserKey is the session key holding the serialized OIDC user.
const SessionUserKey = "user"

// AuthMiddleware gates routes on the session user. When OIDC is not
// configured the app runs open and every request passes through.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if
// not. A no-op when OIDC is disabled.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if m.cfg.OIDCIssuer == "" {
		return c.Next()
	}

	user := sessionUser(c)
	if user == nil {
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require
// authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := sessionUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// sessionUser decodes the user stored in the session, or returns nil.
func sessionUser(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	raw, _ := sess.Get(SessionUserKey).(string)
	if raw == "" {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}
