package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// Application statuses. Every application starts as PENDING; the accepted and
// rejected states are rendered on the profile page but no exposed operation
// performs that transition yet.
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusAccepted = "ACCEPTED"
	ApplicationStatusRejected = "REJECTED"
)

// Application records one user applying to one internship. The unique pair
// index is the canonical guard against duplicate applications: concurrent
// submissions can both pass the handler's pre-check, but only one insert
// survives.
type Application struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	AppliedAt    time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_application_pair" json:"user_id"`
	InternshipID string    `gorm:"not null;uniqueIndex:idx_application_pair" json:"internship_id"`
	Status       string    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CoverLetter  string    `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL    string    `json:"resume_url,omitempty"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		a.ID = id
	}
	return nil
}
