package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// Skill categories
const (
	SkillCategoryTechnical = "Technical"
	SkillCategorySoft      = "Soft Skills"
)

// Skill represents a named skill that internships require and students hold
type Skill struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		s.ID = id
	}
	return nil
}

// StudentSkill links a student to a skill with a proficiency level.
// One row per (user, skill) pair.
type StudentSkill struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_student_skill" json:"user_id"`
	SkillID     string    `gorm:"not null;uniqueIndex:idx_student_skill" json:"skill_id"`
	Proficiency int       `gorm:"default:1" json:"proficiency"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (s *StudentSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		s.ID = id
	}
	return nil
}
