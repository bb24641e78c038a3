package profile

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/flash"
	"github.com/skillconnect/skillconnect/utils/middleware"
)

// ApplicationRow is one line of the application history table
type ApplicationRow struct {
	Status      string
	AppliedAt   time.Time
	Title       string
	CompanyName string
}

// ProfileHandler renders the account page with application history
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// Profile shows the logged-in user's details and their applications, newest
// first.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}

	var applications []ApplicationRow
	err := h.db.Model(&model.Application{}).
		Select("applications.status, applications.applied_at, internships.title, companies.name AS company_name").
		Joins("JOIN internships ON applications.internship_id = internships.id").
		Joins("JOIN companies ON internships.company_id = companies.id").
		Where("applications.user_id = ?", user.ID).
		Order("applications.applied_at DESC").
		Scan(&applications).Error
	if err != nil {
		log.Println("Failed to load application history:", err)
		return fiber.ErrInternalServerError
	}

	return c.Render("profile", fiber.Map{
		"User":         user,
		"Flash":        flash.Pop(c),
		"Applications": applications,
		"AppliedCount": len(applications),
	})
}
