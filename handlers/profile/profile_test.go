package profile

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect/api"
	"github.com/skillconnect/skillconnect/database"
	"github.com/skillconnect/skillconnect/model"
	"github.com/skillconnect/skillconnect/utils/auth"
	"github.com/skillconnect/skillconnect/utils/middleware"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *auth.SessionManager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.NewSeeder(db).SeedAll())

	sessions := auth.NewSessionManager("test-secret")
	authMiddleware := middleware.NewAuthMiddleware(sessions, db)
	handler := NewProfileHandler(db)

	app := api.NewFiberApp()
	app.Get("/profile", authMiddleware.Required(), handler.Profile)

	return app, db, sessions
}

func getProfile(t *testing.T, app *fiber.App, sessions *auth.SessionManager, user *model.User) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if user != nil {
		token, err := sessions.Issue(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProfileShowsApplicationHistory(t *testing.T) {
	app, db, sessions := newTestApp(t)

	student := model.User{
		Email: "s@example.com", PasswordHash: "x", Name: "Asha Verma",
		Role: model.RoleStudent, CollegeTier: "TIER_2", CollegeName: "GEC", Year: 3,
	}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&model.Application{
		UserID:       student.ID,
		InternshipID: "i1",
		Status:       model.ApplicationStatusPending,
	}).Error)

	resp := getProfile(t, app, sessions, &student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.Contains(t, page, "Asha Verma")
	assert.Contains(t, page, "TIER_2")
	assert.Contains(t, page, "Frontend Developer Intern")
	assert.Contains(t, page, "TechStart Solutions")
	assert.Contains(t, page, "PENDING")
}

func TestProfileWithoutApplications(t *testing.T) {
	app, db, sessions := newTestApp(t)

	student := model.User{Email: "s@example.com", PasswordHash: "x", Name: "Asha", Role: model.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	resp := getProfile(t, app, sessions, &student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No Applications Yet")
}

func TestProfileWithoutSessionRedirects(t *testing.T) {
	app, _, sessions := newTestApp(t)

	resp := getProfile(t, app, sessions, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
