package chat

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/skillconnect/skillconnect/services"
	"github.com/skillconnect/skillconnect/utils/middleware"
	"github.com/skillconnect/skillconnect/utils/response"
)

// ChatRequest is the assistant widget's JSON payload
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatHandler answers assistant messages and records transcripts
type ChatHandler struct {
	chats *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chats *services.ChatService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// Chat maps the message to a canned reply. Anonymous visitors get answers
// too; only authenticated exchanges are persisted.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Err(c, fiber.StatusBadRequest, "Message is required")
	}

	if req.Message == "" {
		return response.Err(c, fiber.StatusBadRequest, "Message is required")
	}

	reply, category := services.Respond(req.Message)

	if userID, ok := middleware.GetUserID(c); ok {
		if err := h.chats.RecordExchange(userID, req.Message, reply, category); err != nil {
			// The reply still goes out; losing a transcript row is not fatal
			log.Println("Failed to record chat exchange:", err)
		}
	}

	return response.Chat(c, reply)
}
