package dashboard

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
	handler := NewDashboardHandler(db)

	// The real views engine, so the templates render for real
	app := api.NewFiberApp()
	app.Get("/dashboard", authMiddleware.Required(), handler.Dashboard)

	return app, db, sessions
}

func getDashboard(t *testing.T, app *fiber.App, sessions *auth.SessionManager, user *model.User) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if user != nil {
		token, err := sessions.Issue(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedStudent(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := model.User{Email: "s@example.com", PasswordHash: "x", Name: "Asha", Role: model.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestDashboardRendersListings(t *testing.T) {
	app, db, sessions := newTestApp(t)
	student := seedStudent(t, db)

	resp := getDashboard(t, app, sessions, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.Contains(t, page, "Welcome back, Asha!")
	assert.Contains(t, page, "Frontend Developer Intern")
	assert.Contains(t, page, "Mobile App Development Intern")
	assert.Contains(t, page, "TechStart Solutions")
	// Students see the apply button
	assert.Contains(t, page, "Apply Now")
	// Embedded JSON feeds the client-side filters
	assert.Contains(t, page, "internshipsData")
}

func TestDashboardCountsEveryActiveListing(t *testing.T) {
	app, db, sessions := newTestApp(t)
	student := seedStudent(t, db)

	// Closed listings are excluded
	require.NoError(t, db.Model(&model.Internship{}).
		Where("id = ?", "i1").
		Update("status", model.InternshipStatusClosed).Error)

	resp := getDashboard(t, app, sessions, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.NotContains(t, page, "Frontend Developer Intern")
	assert.Contains(t, page, "Python Backend Developer Intern")
}

func TestDashboardIncrementsViews(t *testing.T) {
	app, db, sessions := newTestApp(t)
	student := seedStudent(t, db)

	resp := getDashboard(t, app, sessions, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var internship model.Internship
	require.NoError(t, db.First(&internship, "id = ?", "i1").Error)
	assert.Equal(t, 1, internship.Views)

	getDashboard(t, app, sessions, student)
	require.NoError(t, db.First(&internship, "id = ?", "i1").Error)
	assert.Equal(t, 2, internship.Views)
}

func TestDashboardWithoutSessionRedirects(t *testing.T) {
	app, _, sessions := newTestApp(t)

	resp := getDashboard(t, app, sessions, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
