package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillconnect/skillconnect/utils/flash"
	"github.com/skillconnect/skillconnect/utils/middleware"
)

// HandleHome renders the landing page with the login and signup forms.
// Logged-in visitors see the page too; the navbar adapts to them.
func HandleHome(c *fiber.Ctx) error {
	user, _ := middleware.GetUser(c)

	return c.Render("home", fiber.Map{
		"User":  user,
		"Flash": flash.Pop(c),
	})
}
