package application

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/middleware"
	"github.com/skillconnect/skillconnect/utils/response"
)

// ApplyRequest is the dashboard apply button's JSON payload
type ApplyRequest struct {
	InternshipID string `json:"internship_id"`
}

// ApplicationHandler handles internship applications
type ApplicationHandler struct {
	db *gorm.DB
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{db: db}
}

// Apply submits an application for the logged-in user. A second submission
// for the same internship reports failure without creating a row; the unique
// (user, internship) index makes the guard hold under concurrent requests.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ApplyFailure(c, "Internship ID is required")
	}

	if req.InternshipID == "" {
		return response.ApplyFailure(c, "Internship ID is required")
	}

	var existing int64
	err := h.db.Model(&model.Application{}).
		Where("user_id = ? AND internship_id = ?", userID, req.InternshipID).
		Count(&existing).Error
	if err != nil {
		return response.ApplyFailure(c, "Could not submit application")
	}
	if existing > 0 {
		return response.ApplyFailure(c, "You have already applied to this internship")
	}

	application := model.Application{
		UserID:       userID,
		InternshipID: req.InternshipID,
		Status:       model.ApplicationStatusPending,
	}

	if err := h.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ApplyFailure(c, "You have already applied to this internship")
		}
		return response.ApplyFailure(c, "Could not submit application")
	}

	return response.ApplySuccess(c)
}
