package auth

import (
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/auth"
	"github.com/skillconnect/skillconnect/utils/middleware"
	"github.com/skillconnect/skillconnect/utils/validation"
)

// AuthHandler handles signup, login and logout. Both forms post from the
// home page and answer with a flash redirect rather than JSON.
type AuthHandler struct {
	db                   *gorm.DB
	sessions             *auth.SessionManager
	validator            *validation.Validator
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil
// when Redis is not configured.
func NewAuthHandler(db *gorm.DB, sessions *auth.SessionManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		sessions:             sessions,
		validator:            validation.NewValidator(),
		bruteForceProtection: bruteForceProtection,
	}
}
