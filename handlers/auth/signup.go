package auth

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
	"github.com/skillconnect/skillconnect/utils/flash"
	"github.com/skillconnect/skillconnect/utils/validation"
)

// SignupRequest is the home page signup form
type SignupRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Role     string `form:"role" validate:"required,oneof=STUDENT RECRUITER"`

	// Student-only fields, ignored for recruiters
	CollegeTier string `form:"college_tier"`
	CollegeName string `form:"college_name"`
	Year        string `form:"year"`
}

// Signup registers a new account and logs it in. Every failure lands back on
// the home page with a flash message.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		flash.Set(c, flash.LevelError, "Error creating account: invalid form data")
		return c.Redirect("/", fiber.StatusFound)
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		flash.Set(c, flash.LevelError, "Error creating account: "+validation.FirstError(err))
		return c.Redirect("/", fiber.StatusFound)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		flash.Set(c, flash.LevelError, "Error creating account: please try again")
		return c.Redirect("/", fiber.StatusFound)
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         req.Role,
	}

	if req.Role == model.RoleStudent {
		user.CollegeTier = req.CollegeTier
		user.CollegeName = req.CollegeName
		if year, err := strconv.Atoi(req.Year); err == nil {
			user.Year = year
		}
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			flash.Set(c, flash.LevelError, "Email already registered")
		} else {
			flash.Set(c, flash.LevelError, "Error creating account: please try again")
		}
		return c.Redirect("/", fiber.StatusFound)
	}

	if err := h.startSession(c, &user); err != nil {
		flash.Set(c, flash.LevelError, "Error creating account: please try again")
		return c.Redirect("/", fiber.StatusFound)
	}

	flash.Set(c, flash.LevelSuccess, "Account created successfully! Welcome aboard.")
	return c.Redirect("/dashboard", fiber.StatusFound)
}
