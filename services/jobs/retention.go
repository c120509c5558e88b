package jobs

import (
	"log"

	"pulseboard_app_go/config"
	"pulseboard_app_go/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler starts the background retention job. It runs nightly and
// removes demo requests older than the configured retention window.
func StartScheduler(database *gorm.DB, cfg *config.Config) {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		log.Println("[CRON] Running demo request retention cleanup...")
		PurgeOldDemoRequests(database, cfg.DemoRetentionDays)
	})

	if err != nil {
		log.Fatalf("[CRON] Failed to schedule retention job: %v", err)
	}

	c.Start()
	log.Println("[CRON] Scheduler started")
}

// PurgeOldDemoRequests deletes demo requests past the retention window
func PurgeOldDemoRequests(database *gorm.DB, retentionDays int) {
	svc := services.NewDemoRequestService(database)

	removed, err := svc.CleanupOld(retentionDays)
	if err != nil {
		log.Printf("[JOB] Error purging old demo requests: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[JOB] Purged %d demo requests older than %d days", removed, retentionDays)
	}
}
