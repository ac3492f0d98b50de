package jobs

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
)

// HandleCleanupReportsTask deletes generated report files older than the
// retention window. The Report rows stay as a log of what was generated.
func HandleCleanupReportsTask(ctx context.Context, t *asynq.Task) error {
	var payload CleanupReportsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	if payload.MaxAgeDays <= 0 {
		payload.MaxAgeDays = 90
	}

	cutoff := time.Now().AddDate(0, 0, -payload.MaxAgeDays)
	removed := 0

	err := filepath.Walk(ReportDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Println("⚠️ Failed to remove old report:", path, err)
				return nil
			}
			removed++
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil // nothing generated yet
	}
	if err != nil {
		return err
	}

	log.Printf("✅ Report cleanup done, removed %d files", removed)
	return nil
}
