package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
)

// ChatRetentionDays is how long chat transcripts are kept before the nightly
// purge removes them.
const ChatRetentionDays = 30

// Manager owns the background schedule: a nightly chat transcript purge and
// an hourly listing stats log line.
type Manager struct {
	scheduler *cron.Cron
	db        *gorm.DB
}

// NewManager creates a cron manager bound to the database
func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		scheduler: cron.New(),
		db:        db,
	}
}

// Start registers the jobs and begins the schedule
func (m *Manager) Start() error {
	if _, err := m.scheduler.AddFunc("0 3 * * *", m.purgeOldChatMessages); err != nil {
		return err
	}
	if _, err := m.scheduler.AddFunc("0 * * * *", m.logListingStats); err != nil {
		return err
	}

	m.scheduler.Start()
	log.Println("Cron scheduler started")
	return nil
}

// Stop halts the schedule and waits for running jobs to finish
func (m *Manager) Stop() {
	ctx := m.scheduler.Stop()
	<-ctx.Done()
	log.Println("Cron scheduler stopped")
}

// purgeOldChatMessages deletes transcripts older than the retention window
func (m *Manager) purgeOldChatMessages() {
	cutoff := time.Now().AddDate(0, 0, -ChatRetentionDays)

	result := m.db.Where("created_at < ?", cutoff).Delete(&model.ChatMessage{})
	if result.Error != nil {
		log.Println("Chat purge failed:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d chat messages older than %d days\n", result.RowsAffected, ChatRetentionDays)
	}
}

// logListingStats writes a periodic snapshot of listing and application counts
func (m *Manager) logListingStats() {
	var active, applications int64
	if err := m.db.Model(&model.Internship{}).Where("status = ?", model.InternshipStatusActive).Count(&active).Error; err != nil {
		log.Println("Stats job failed:", err)
		return
	}
	if err := m.db.Model(&model.Application{}).Count(&applications).Error; err != nil {
		log.Println("Stats job failed:", err)
		return
	}

	log.Printf("Listing stats: %d active internships, %d applications\n", active, applications)
}
