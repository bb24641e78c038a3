package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
)

// Demo recruiter credentials, printed at boot
const (
	SeedRecruiterEmail    = "recruiter@techstart.com"
	SeedRecruiterPassword = "password123"
)

// Seeder loads the fixed catalog into a freshly reset store
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions in foreign-key order
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedCompanies(); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}

	if err := s.SeedSkills(); err != nil {
		return fmt.Errorf("failed to seed skills: %w", err)
	}

	if err := s.SeedRecruiter(); err != nil {
		return fmt.Errorf("failed to seed recruiter: %w", err)
	}

	if err := s.SeedInternships(); err != nil {
		return fmt.Errorf("failed to seed internships: %w", err)
	}

	if err := s.SeedInternshipSkills(); err != nil {
		return fmt.Errorf("failed to seed internship skills: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedCompanies creates the three demo companies
func (s *Seeder) SeedCompanies() error {
	companies := []model.Company{
		{
			ID:          "c1",
			Name:        "TechStart Solutions",
			Description: "A dynamic startup focused on building innovative software solutions for small businesses.",
			Industry:    "Technology",
			Website:     "https://techstart.example.com",
			Location:    "Bangalore",
		},
		{
			ID:          "c2",
			Name:        "Digital Innovations Inc",
			Description: "Leading digital transformation company helping businesses go digital.",
			Industry:    "Technology",
			Website:     "https://digitalinnovations.example.com",
			Location:    "Hyderabad",
		},
		{
			ID:          "c3",
			Name:        "CloudTech Systems",
			Description: "Cloud infrastructure and services provider for enterprise clients.",
			Industry:    "Cloud Computing",
			Website:     "https://cloudtech.example.com",
			Location:    "Remote",
		},
	}

	if err := s.db.Create(&companies).Error; err != nil {
		return err
	}

	log.Printf("Created %d companies\n", len(companies))
	return nil
}

// SeedSkills creates the skill catalog
func (s *Seeder) SeedSkills() error {
	skills := []model.Skill{
		{ID: "s1", Name: "JavaScript", Category: model.SkillCategoryTechnical},
		{ID: "s2", Name: "Python", Category: model.SkillCategoryTechnical},
		{ID: "s3", Name: "React", Category: model.SkillCategoryTechnical},
		{ID: "s4", Name: "Node.js", Category: model.SkillCategoryTechnical},
		{ID: "s5", Name: "SQL", Category: model.SkillCategoryTechnical},
		{ID: "s6", Name: "Machine Learning", Category: model.SkillCategoryTechnical},
		{ID: "s7", Name: "Data Analysis", Category: model.SkillCategoryTechnical},
		{ID: "s8", Name: "Problem Solving", Category: model.SkillCategorySoft},
		{ID: "s9", Name: "Communication", Category: model.SkillCategorySoft},
		{ID: "s10", Name: "Teamwork", Category: model.SkillCategorySoft},
		{ID: "s11", Name: "HTML/CSS", Category: model.SkillCategoryTechnical},
		{ID: "s12", Name: "TypeScript", Category: model.SkillCategoryTechnical},
	}

	if err := s.db.Create(&skills).Error; err != nil {
		return err
	}

	log.Printf("Created %d skills\n", len(skills))
	return nil
}

// SeedRecruiter creates the demo recruiter account that posts every listing
func (s *Seeder) SeedRecruiter() error {
	passwordHash, err := auth.HashPassword(SeedRecruiterPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	recruiter := &model.User{
		ID:           "u1",
		Email:        SeedRecruiterEmail,
		PasswordHash: passwordHash,
		Name:         "Priya Sharma",
		Role:         model.RoleRecruiter,
		Bio:          "Recruiter at TechStart, passionate about finding diverse talent.",
	}

	if err := s.db.Create(recruiter).Error; err != nil {
		return err
	}

	log.Printf("Created recruiter user: %s\n", recruiter.Email)
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// SeedInternships creates the eight demo listings. CreatedAt is staggered so
// newest-first ordering is deterministic (i8 is the most recent posting).
func (s *Seeder) SeedInternships() error {
	base := time.Now().Add(-8 * time.Hour)

	internships := []model.Internship{
		{
			ID:          "i1",
			Title:       "Frontend Developer Intern",
			Description: "We are looking for a passionate Frontend Developer Intern to join our team. You will work on building user-friendly interfaces using React and modern web technologies. This is a great opportunity to learn from experienced developers and work on real-world projects.",
			Location:    "Remote",
			Type:        model.TypeRemote,
			Duration:    3,
			Stipend:     intPtr(15000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c1"),
		},
		{
			ID:          "i2",
			Title:       "Python Backend Developer Intern",
			Description: "Join our backend team and work on building scalable APIs and services. You will gain hands-on experience with Python, Django, and database management. Ideal for students who love server-side development and want to build robust applications.",
			Location:    "Bangalore",
			Type:        model.TypeHybrid,
			Duration:    6,
			Stipend:     intPtr(20000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c1"),
		},
		{
			ID:          "i3",
			Title:       "Data Science Intern",
			Description: "Exciting opportunity for students interested in Data Science and Machine Learning. Work on real datasets, build predictive models, and help businesses make data-driven decisions. Strong foundation in Python and mathematics required.",
			Location:    "Remote",
			Type:        model.TypeRemote,
			Duration:    4,
			Stipend:     intPtr(18000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c2"),
		},
		{
			ID:          "i4",
			Title:       "Full Stack Developer Intern",
			Description: "Looking for enthusiastic developers to work on full-stack web applications. You will get exposure to both frontend and backend technologies, including React, Node.js, and databases. Perfect opportunity to become a well-rounded developer.",
			Location:    "Hyderabad",
			Type:        model.TypeFullTime,
			Duration:    6,
			Stipend:     intPtr(22000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c2"),
		},
		{
			ID:          "i5",
			Title:       "Cloud Computing Intern",
			Description: "Join our cloud team and learn about cloud infrastructure, deployment, and DevOps practices. Work with AWS services, containerization, and CI/CD pipelines. Great for students interested in cloud technologies and DevOps.",
			Location:    "Remote",
			Type:        model.TypeRemote,
			Duration:    3,
			Stipend:     intPtr(17000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c3"),
		},
		{
			ID:          "i6",
			Title:       "Junior Developer Intern - Web",
			Description: "Entry-level position for motivated students to learn web development. No prior experience required - just passion for coding and willingness to learn. We provide mentorship and training. Start your career with us!",
			Location:    "Bangalore",
			Type:        model.TypeFullTime,
			Duration:    4,
			Stipend:     intPtr(12000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c1"),
		},
		{
			ID:          "i7",
			Title:       "ML Research Intern",
			Description: "Work on cutting-edge machine learning research projects. Collaborate with senior researchers, implement algorithms, and contribute to publications. Strong math and Python background preferred.",
			Location:    "Remote",
			Type:        model.TypeRemote,
			Duration:    6,
			Stipend:     intPtr(25000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c3"),
		},
		{
			ID:          "i8",
			Title:       "Mobile App Development Intern",
			Description: "Develop mobile applications using modern frameworks. Work on both iOS and Android platforms. Learn about mobile UI/UX, app deployment, and app store optimization.",
			Location:    "Hyderabad",
			Type:        model.TypeHybrid,
			Duration:    3,
			Stipend:     intPtr(16000),
			PostedByID:  "u1",
			CompanyID:   strPtr("c2"),
		},
	}

	for i := range internships {
		internships[i].Status = model.InternshipStatusActive
		internships[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}

	if err := s.db.Create(&internships).Error; err != nil {
		return err
	}

	log.Printf("Created %d internships\n", len(internships))
	return nil
}

// SeedInternshipSkills tags each listing with its required skills
func (s *Seeder) SeedInternshipSkills() error {
	pairs := []struct {
		internship string
		skills     []string
	}{
		{"i1", []string{"s1", "s3", "s11", "s12"}},
		{"i2", []string{"s2", "s5", "s8"}},
		{"i3", []string{"s2", "s6", "s7", "s5"}},
		{"i4", []string{"s1", "s3", "s4", "s5"}},
		{"i5", []string{"s8", "s10", "s9"}},
		{"i6", []string{"s8", "s9", "s10", "s11"}},
		{"i7", []string{"s2", "s6", "s8"}},
		{"i8", []string{"s1", "s8", "s10"}},
	}

	var links []model.InternshipSkill
	n := 0
	for _, p := range pairs {
		for _, skillID := range p.skills {
			n++
			links = append(links, model.InternshipSkill{
				ID:           fmt.Sprintf("is%d", n),
				InternshipID: p.internship,
				SkillID:      skillID,
			})
		}
	}

	if err := s.db.Create(&links).Error; err != nil {
		return err
	}

	log.Printf("Created %d internship skill links\n", len(links))
	return nil
}
