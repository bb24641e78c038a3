package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// Company represents an organization offering internships
type Company struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`

	Internships []Internship `gorm:"foreignKey:CompanyID" json:"-"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
