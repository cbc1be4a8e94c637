package server

import (
	"context"
	"os"
	"time"
)

// WatchFile polls the file's modification time and calls onChange when
// it moves. It returns when the context is canceled.
func WatchFile(ctx context.Context, path string, interval time.Duration, onChange func()) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	var last time.Time
	if info, err := os.Stat(path); err == nil {
		last = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(last) {
				last = mod
				onChange()
			}
		}
	}
}
