//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op off Windows; goroutine/heap stats come from
// StartGoroutineLogger on every platform.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
