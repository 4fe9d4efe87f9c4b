package jobs

import (
	"log"
	"time"

	"hotel-management-server/config"
	"hotel-management-server/services"
)

// DraftCleanupJob discards feedback drafts that were started but never
// submitted.
type DraftCleanupJob struct {
	stopChan chan bool
}

// NewDraftCleanupJob creates a new draft cleanup job
func NewDraftCleanupJob() *DraftCleanupJob {
	return &DraftCleanupJob{
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *DraftCleanupJob) Start() {
	go j.run()
	log.Println("🚀 Feedback draft cleanup job started")
}

// Stop stops the cleanup job
func (j *DraftCleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Feedback draft cleanup job stopped")
}

// run executes the cleanup job
func (j *DraftCleanupJob) run() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweepStaleDrafts()
		case <-j.stopChan:
			return
		}
	}
}

// sweepStaleDrafts removes drafts idle longer than the configured TTL
func (j *DraftCleanupJob) sweepStaleDrafts() {
	ttl := time.Duration(config.AppConfig.Feedback.DraftTTLMinutes) * time.Minute

	if removed := services.Drafts.Cleanup(ttl); removed > 0 {
		log.Printf("⏰ Discarded %d stale feedback drafts", removed)
	}
}
