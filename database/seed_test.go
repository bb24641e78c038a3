package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedAllPopulatesCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).SeedAll())

	var companies, skills, internships, links, users int64
	require.NoError(t, db.Model(&model.Company{}).Count(&companies).Error)
	require.NoError(t, db.Model(&model.Skill{}).Count(&skills).Error)
	require.NoError(t, db.Model(&model.Internship{}).Count(&internships).Error)
	require.NoError(t, db.Model(&model.InternshipSkill{}).Count(&links).Error)
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)

	assert.EqualValues(t, 3, companies)
	assert.EqualValues(t, 12, skills)
	assert.EqualValues(t, 8, internships)
	assert.EqualValues(t, 28, links)
	assert.EqualValues(t, 1, users)
}

func TestSeedRecruiterCredentialsWork(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).SeedAll())

	var recruiter model.User
	require.NoError(t, db.Where("email = ?", SeedRecruiterEmail).First(&recruiter).Error)

	assert.Equal(t, model.RoleRecruiter, recruiter.Role)
	assert.NoError(t, auth.VerifyPassword(recruiter.PasswordHash, SeedRecruiterPassword))
}

func TestSeedInternshipsAreActiveAndOrdered(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).SeedAll())

	var internships []model.Internship
	require.NoError(t, db.Order("created_at DESC").Find(&internships).Error)
	require.Len(t, internships, 8)

	// i8 was posted last and leads the newest-first ordering
	assert.Equal(t, "i8", internships[0].ID)
	assert.Equal(t, "i1", internships[7].ID)

	for _, i := range internships {
		assert.Equal(t, model.InternshipStatusActive, i.Status)
	}
}

func TestSeedAllIsNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db)
	require.NoError(t, seeder.SeedAll())

	// A second run hits the fixed identifiers; the reset must come first
	assert.Error(t, seeder.SeedAll())
}
