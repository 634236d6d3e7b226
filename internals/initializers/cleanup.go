package initializers

import (
	"log"
	"time"

	"github.com/Typical-techno/investigation-backend/internals/models"
)

// StartOTPCleanup runs a background janitor that hard-deletes expired
// one-time codes. Losing a race with a concurrent issue is safe: the
// newest code always wins at verification time, a deleted stale row was
// unverifiable anyway.
func StartOTPCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		for range ticker.C {
			// Unscoped() performs a physical delete, bypassing GORM's
			// soft-delete column, so the table does not grow forever
			result := DB.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.OneTimeCode{})

			if result.RowsAffected > 0 {
				log.Printf("Janitor: Cleaned %d expired one-time codes", result.RowsAffected)
			}
		}
	}()
}
