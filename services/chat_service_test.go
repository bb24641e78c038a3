package services

import (
	"path/filepath"
	"strings"
	"testing"

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

func TestRespondResumeQuestions(t *testing.T) {
	reply, category := Respond("How do I improve my resume?")

	assert.Equal(t, CategoryResume, category)
	assert.Contains(t, reply, "Based on your question about resume")
	assert.Contains(t, reply, "Keep your resume concise - ideally 1-2 pages")
	assert.Contains(t, reply, "Is there anything specific you'd like to know more about?")

	// Exactly the first three tips, as bullets
	assert.Equal(t, 3, strings.Count(reply, "•"))
}

func TestRespondMatchesAreCaseInsensitive(t *testing.T) {
	_, category := Respond("TELL ME ABOUT INTERVIEWS")
	assert.Equal(t, CategoryInterview, category)
}

func TestRespondPriorityOrder(t *testing.T) {
	// "resume" outranks "interview" when both appear
	_, category := Respond("resume tips for my interview")
	assert.Equal(t, CategoryResume, category)

	// "skill" outranks "internship"
	_, category = Respond("what skills do I need for an internship?")
	assert.Equal(t, CategorySkills, category)
}

func TestRespondUnmatchedReturnsMenu(t *testing.T) {
	for _, message := range []string{"", "hello there", "what's the weather"} {
		reply, category := Respond(message)
		assert.Empty(t, category)
		assert.Contains(t, reply, "I'm here to help you with your career journey!")
		assert.Contains(t, reply, "Resume writing tips")
	}
}

func TestRespondCategoryKeywords(t *testing.T) {
	cases := map[string]string{
		"my cv needs work":             CategoryResume,
		"common questions asked":       CategoryInterview,
		"I want to learn programming":  CategorySkills,
		"how do I apply":               CategoryInternship,
		"does my college tier matter?": CategoryTier,
	}

	for message, want := range cases {
		_, got := Respond(message)
		assert.Equal(t, want, got, "message %q", message)
	}
}

func TestRecordExchangeWritesTranscript(t *testing.T) {
	db := newTestDB(t)
	user := model.User{Email: "s@example.com", PasswordHash: "x", Name: "S", Role: model.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	svc := NewChatService(db)
	reply, category := Respond("resume help")
	require.NoError(t, svc.RecordExchange(user.ID, "resume help", reply, category))

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.True(t, history[0].IsUser)
	assert.Equal(t, "resume help", history[0].Message)
	assert.False(t, history[1].IsUser)
	assert.Equal(t, reply, history[1].Message)
	assert.Equal(t, CategoryResume, history[1].Context)
	assert.Contains(t, string(history[1].Metadata), `"matched":true`)
}
