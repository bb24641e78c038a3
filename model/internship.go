package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// Internship work types
const (
	TypeRemote   = "REMOTE"
	TypeHybrid   = "HYBRID"
	TypeFullTime = "FULL_TIME"
	TypePartTime = "PART_TIME"
)

// Internship statuses. Only ACTIVE listings appear on the dashboard.
const (
	InternshipStatusActive = "ACTIVE"
	InternshipStatusClosed = "CLOSED"
)

// Internship represents a posted internship listing
type Internship struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Duration    int       `gorm:"not null" json:"duration"` // months
	Stipend     *int      `json:"stipend,omitempty"`
	PostedByID  string    `gorm:"not null;index" json:"posted_by_id"`
	CompanyID   *string   `gorm:"index" json:"company_id,omitempty"`
	Status      string    `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
	Views       int       `gorm:"default:0" json:"views"` // monotonically non-decreasing

	PostedBy User     `gorm:"foreignKey:PostedByID" json:"-"`
	Company  *Company `gorm:"foreignKey:CompanyID" json:"-"`

	SkillLinks   []InternshipSkill `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []Application     `gorm:"foreignKey:InternshipID" json:"-"`
}

func (i *Internship) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		i.ID = id
	}
	return nil
}

// InternshipSkill tags an internship with a skill. The unique pair index
// prevents duplicate tagging.
type InternshipSkill struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	InternshipID string    `gorm:"not null;uniqueIndex:idx_internship_skill" json:"internship_id"`
	SkillID      string    `gorm:"not null;uniqueIndex:idx_internship_skill" json:"skill_id"`

	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
	Skill      Skill      `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (is *InternshipSkill) BeforeCreate(tx *gorm.DB) error {
	if is.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		is.ID = id
	}
	return nil
}

// SavedInternship bookmarks an internship for a user. One row per
// (user, internship) pair.
type SavedInternship struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_saved_internship" json:"user_id"`
	InternshipID string    `gorm:"not null;uniqueIndex:idx_saved_internship" json:"internship_id"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
}

func (s *SavedInternship) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		s.ID = id
	}
	return nil
}
