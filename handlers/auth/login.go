package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
	"github.com/skillconnect/skillconnect/utils/flash"
)

// LoginRequest is the home page login form
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Login authenticates a user against the stored bcrypt hash. An unknown email
// and a wrong password produce the same flash message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		flash.Set(c, flash.LevelError, "Invalid credentials")
		return c.Redirect("/", fiber.StatusFound)
	}

	if req.Email == "" || req.Password == "" {
		flash.Set(c, flash.LevelError, "Invalid credentials")
		return c.Redirect("/", fiber.StatusFound)
	}

	ip := c.IP()

	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		flash.Set(c, flash.LevelError, "Invalid credentials")
		return c.Redirect("/", fiber.StatusFound)
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		flash.Set(c, flash.LevelError, "Invalid credentials")
		return c.Redirect("/", fiber.StatusFound)
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	if err := h.startSession(c, &user); err != nil {
		flash.Set(c, flash.LevelError, "Login error: please try again")
		return c.Redirect("/", fiber.StatusFound)
	}

	flash.Set(c, flash.LevelSuccess, "Welcome back! You are now logged in.")
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout clears the session cookie and returns to the home page
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	flash.Set(c, flash.LevelSuccess, "You have been logged out.")
	return c.Redirect("/", fiber.StatusFound)
}

// startSession issues a signed token and sets the session cookie
func (h *AuthHandler) startSession(c *fiber.Ctx, user *model.User) error {
	token, err := h.sessions.Issue(user)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
