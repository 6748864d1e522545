package log

import (
	"path/filepath"
	"time"

	"github.com/anisan-cli/anibot/filesystem"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/where"
	"github.com/spf13/viper"
)

// CollectGarbage removes log files last written before the retention window ending at now,
// and reports how many were removed. A non-positive logs.keep_days keeps every file.
func CollectGarbage(now time.Time) int {
	days := viper.GetInt(key.LogsKeepDays)
	if days <= 0 {
		return 0
	}

	fs := filesystem.API()
	dir := where.Logs()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return 0
	}

	cutoff := now.AddDate(0, 0, -days)
	var removed int
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" || !entry.ModTime().Before(cutoff) {
			continue
		}

		if err := fs.Remove(filepath.Join(dir, entry.Name())); err != nil {
			Warn(err)
			continue
		}
		removed++
	}

	return removed
}
