package router

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/skillconnect/skillconnect/config"
	"github.com/skillconnect/skillconnect/database"
	"github.com/skillconnect/skillconnect/handlers"
	application_handlers "github.com/skillconnect/skillconnect/handlers/application"
	auth_handlers "github.com/skillconnect/skillconnect/handlers/auth"
	chat_handlers "github.com/skillconnect/skillconnect/handlers/chat"
	dashboard_handlers "github.com/skillconnect/skillconnect/handlers/dashboard"
	profile_handlers "github.com/skillconnect/skillconnect/handlers/profile"
	"github.com/skillconnect/skillconnect/services"
	"github.com/skillconnect/skillconnect/utils/auth"
	"github.com/skillconnect/skillconnect/utils/cache"
	"github.com/skillconnect/skillconnect/utils/middleware"
)

// SetupRoutes wires every page and API endpoint onto the app
func SetupRoutes(app *fiber.App, store *database.GORMStore) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to read configuration:", err)
	}

	db := store.GetDB()

	sessions := auth.NewSessionManager(getEnv.SESSION_SECRET)
	authMiddleware := middleware.NewAuthMiddleware(sessions, db)

	// Brute force protection is optional; without Redis the login route runs
	// unprotected.
	var bruteForceProtection *middleware.BruteForceProtection
	if getEnv.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection disabled.", err)
		} else {
			bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
		}
	}

	authHandler := auth_handlers.NewAuthHandler(db, sessions, bruteForceProtection)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db)
	profileHandler := profile_handlers.NewProfileHandler(db)
	chatHandler := chat_handlers.NewChatHandler(services.NewChatService(db))
	applicationHandler := application_handlers.NewApplicationHandler(db)

	// Pages
	app.Get("/", authMiddleware.Optional(), handlers.HandleHome)
	app.Get("/dashboard", authMiddleware.Required(), dashboardHandler.Dashboard)
	app.Get("/profile", authMiddleware.Required(), profileHandler.Profile)

	// Auth forms
	app.Post("/signup", authHandler.Signup)
	if bruteForceProtection != nil {
		app.Post("/login", bruteForceProtection.CheckLock(), authHandler.Login)
	} else {
		app.Post("/login", authHandler.Login)
	}
	app.Get("/logout", authHandler.Logout)

	// JSON API used by the dashboard and the assistant widget
	apiGroup := app.Group("/api")
	apiGroup.Post("/chat", authMiddleware.Optional(), chatHandler.Chat)
	apiGroup.Post("/apply", authMiddleware.Required(), applicationHandler.Apply)

	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})
}
