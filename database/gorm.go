package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect/config"
	"github.com/skillconnect/skillconnect/model"
)

// GORMStore wraps the GORM connection. The store file (SQLite by default) is
// destroyed and rebuilt with seed data on every process start.
type GORMStore struct {
	db *gorm.DB
}

// StartGORM opens the database. SQLite is the default; PostgreSQL is used
// when DB_HOST is configured.
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Warn)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		// Surface unique violations as gorm.ErrDuplicatedKey so handlers can
		// treat an insert conflict as the canonical "already exists" signal
		TranslateError: true,
	}

	var db *gorm.DB
	if getEnv.DB_HOST != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			getEnv.DB_HOST,
			getEnv.DB_USER_NAME,
			getEnv.DB_PASSWORD,
			getEnv.DB_NAME,
			getEnv.DB_PORT,
			getEnv.DB_SSL_MODE,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(getEnv.DB_PATH), gormConfig)
	}
	if err != nil {
		log.Println("Unable to open database with GORM:", err)
		return nil, err
	}

	// Connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to database with GORM.")

	return &GORMStore{db: db}, nil
}

// models in dependency order, leaves last so drops can run in reverse
func models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Company{},
		&model.Skill{},
		&model.Internship{},
		&model.InternshipSkill{},
		&model.Application{},
		&model.StudentSkill{},
		&model.SavedInternship{},
		&model.ChatMessage{},
	}
}

// Init drops all tables and recreates them. The destructive reset runs on
// every boot; nothing survives a restart except the seed data.
func (s *GORMStore) Init() error {
	log.Println("Resetting database schema...")

	all := models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := s.db.Migrator().DropTable(all[i]); err != nil {
			log.Println("Error dropping table:", err)
			return err
		}
	}

	if err := Migrate(s.db); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("Database schema created successfully!")
	return nil
}

// Migrate creates all tables. Split out so tests can build a schema without
// the destructive reset.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

// GetDB returns the GORM DB instance for use in handlers and services
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing database connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
