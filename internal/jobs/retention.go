package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// StartRetentionSweeper schedules a daily sweep that deletes report files
// older than maxAgeDays from exportDir. Export history rows stay in the
// database; only the files on disk expire. Returns the scheduler so the
// caller can stop it on shutdown.
func StartRetentionSweeper(exportDir string, maxAgeDays int) *cron.Cron {
	c := cron.New()
	c.AddFunc("@midnight", func() {
		removed, err := SweepExpired(exportDir, maxAgeDays, time.Now())
		if err != nil {
			fmt.Printf("❌ Retention sweep failed: %v\n", err)
			return
		}
		fmt.Printf("🧹 Retention sweep: removed %d expired report files\n", removed)
	})
	c.Start()
	return c
}

// SweepExpired removes files in dir whose modification time is more than
// maxAgeDays before now. It returns how many files were removed.
func SweepExpired(dir string, maxAgeDays int, now time.Time) (int, error) {
	if maxAgeDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", maxAgeDays)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read export directory: %w", err)
	}

	cutoff := now.AddDate(0, 0, -maxAgeDays)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
