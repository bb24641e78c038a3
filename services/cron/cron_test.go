package cron

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect/database"
	"github.com/skillconnect/skillconnect/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestPurgeRemovesOnlyExpiredTranscripts(t *testing.T) {
	db := newTestDB(t)

	user := model.User{Email: "s@example.com", PasswordHash: "x", Name: "S", Role: model.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	old := model.ChatMessage{UserID: user.ID, Message: "old", IsUser: true}
	recent := model.ChatMessage{UserID: user.ID, Message: "recent", IsUser: true}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	// Backdate one row past the retention window
	expired := time.Now().AddDate(0, 0, -(ChatRetentionDays + 1))
	require.NoError(t, db.Model(&model.ChatMessage{}).
		Where("id = ?", old.ID).
		Update("created_at", expired).Error)

	m := NewManager(db)
	m.purgeOldChatMessages()

	var remaining []model.ChatMessage
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].Message)
}

func TestStartRegistersJobs(t *testing.T) {
	db := newTestDB(t)
	m := NewManager(db)

	require.NoError(t, m.Start())
	defer m.Stop()

	assert.Len(t, m.scheduler.Entries(), 2)
}
