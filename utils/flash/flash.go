// Package flash implements one-shot flash messages carried in a cookie.
// A message set before a redirect is read (and cleared) by the next page
// render, replacing framework-ambient flash state with explicit
// request-scoped data.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "sc_flash"

// Levels used by the handlers.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Message is a single flash message.
type Message struct {
	Level string
	Text  string
}

// Set stores a flash message for the next request.
func Set(c *fiber.Ctx, level, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(level + "|" + text),
		Path:     "/",
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
	})
}

// Pop returns the pending flash message, if any, and clears it.
func Pop(c *fiber.Ctx) *Message {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return nil
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}

	level, text, found := strings.Cut(decoded, "|")
	if !found {
		return &Message{Level: LevelError, Text: decoded}
	}
	return &Message{Level: level, Text: text}
}
