package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/skillconnect/skillconnect/api"
	"github.com/skillconnect/skillconnect/config"
	"github.com/skillconnect/skillconnect/database"
	"github.com/skillconnect/skillconnect/router"
	"github.com/skillconnect/skillconnect/services/cron"
)

// SetupAndRunServer boots the whole application: configuration, the
// destructive database reset and reseed, background jobs, routes, and the
// HTTP listener.
func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		return err
	}

	// The store is rebuilt from scratch on every boot. Nothing persists
	// across restarts except the seed catalog.
	if err := store.Init(); err != nil {
		return err
	}

	seeder := database.NewSeeder(store.GetDB())
	if err := seeder.SeedAll(); err != nil {
		return err
	}

	var cronManager *cron.Manager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewManager(store.GetDB())
		if err := cronManager.Start(); err != nil {
			log.Println("Warning: Failed to start cron jobs:", err)
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	app.Use(logger.New())
	app.Use(recover.New())

	router.SetupRoutes(app, store)

	log.Println("SkillConnect - Internship Matching Platform")
	log.Printf("Open your browser to: http://localhost:%d\n", getEnv.PORT)
	log.Printf("Demo recruiter: %s / %s\n", database.SeedRecruiterEmail, database.SeedRecruiterPassword)

	return server.Run()
}
