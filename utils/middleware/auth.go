package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
)

// AuthMiddleware is the session gate. Identity lives in a signed cookie; the
// gate validates it, loads the user row and stashes both in request locals.
type AuthMiddleware struct {
	sessions *auth.SessionManager
	db       *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions *auth.SessionManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		db:       db,
	}
}

// Required guards a route that needs an authenticated identity. Requests
// without a valid session are redirected to the home page without executing
// the wrapped handler.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.SessionCookieName)
		if token == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			return c.Redirect("/", fiber.StatusFound)
		}

		var user model.User
		if err := m.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			// Session outlived its user row (the store is reseeded on boot)
			return c.Redirect("/", fiber.StatusFound)
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)
		c.Locals("user", &user)

		return c.Next()
	}
}

// Optional attaches the identity when a valid session is present and proceeds
// anonymously otherwise.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.SessionCookieName)
		if token == "" {
			return c.Next()
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			return c.Next()
		}

		var user model.User
		if err := m.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			return c.Next()
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)
		c.Locals("user", &user)

		return c.Next()
	}
}

// GetUserID extracts the authenticated user's identifier from context
func GetUserID(c *fiber.Ctx) (string, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetUser extracts the full user object from context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user := c.Locals("user")
	if user == nil {
		return nil, false
	}
	u, ok := user.(*model.User)
	return u, ok
}
