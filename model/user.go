package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// User roles. Role is fixed at creation and never changes.
const (
	RoleStudent   = "STUDENT"
	RoleRecruiter = "RECRUITER"
)

// College tiers for student accounts
const (
	TierOne   = "TIER_1"
	TierTwo   = "TIER_2"
	TierThree = "TIER_3"
	TierOther = "OTHER"
)

// User represents a registered user in the system
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"` // STUDENT, RECRUITER
	Phone        string    `json:"phone,omitempty"`
	CollegeTier  string    `gorm:"type:varchar(20)" json:"college_tier,omitempty"`
	CollegeName  string    `json:"college_name,omitempty"`
	Year         int       `json:"year,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`

	// Relationships
	Internships      []Internship      `gorm:"foreignKey:PostedByID" json:"-"`
	Applications     []Application     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Skills           []StudentSkill    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavedInternships []SavedInternship `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ChatMessages     []ChatMessage     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a random identifier unless one was set explicitly
// (the seeder uses fixed identifiers).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		u.ID = id
	}
	return nil
}

// IsStudent reports whether this account can apply to internships.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
