package response

import (
	"github.com/gofiber/fiber/v2"
)

// ChatResponse is the wire shape of a successful /api/chat call.
type ChatResponse struct {
	Response string `json:"response"`
}

// ApplyResponse is the wire shape of every /api/apply call.
type ApplyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Chat returns the assistant's reply.
func Chat(c *fiber.Ctx, reply string) error {
	return c.Status(fiber.StatusOK).JSON(ChatResponse{Response: reply})
}

// Err returns a bare {"error": ...} body with the given status.
func Err(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// ApplySuccess reports a submitted application.
func ApplySuccess(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ApplyResponse{Success: true})
}

// ApplyFailure reports a rejected application submission. The original
// contract returns 200 with success=false rather than an error status.
func ApplyFailure(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(ApplyResponse{Success: false, Error: message})
}
