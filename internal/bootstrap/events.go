package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/skillforge/internal/config"
	"github.com/osse101/skillforge/internal/event"
)

// InitializeEventSystem builds the in-memory bus and the resilient publisher
// in front of it. Zero retry settings fall back to package defaults. Entries
// left in the dead-letter file by earlier runs are reported, not replayed.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}
	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}
	reportDeadLetters(deadLetterPath)

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)
	return bus, publisher, nil
}

// reportDeadLetters warns once per event type found in the dead-letter file.
func reportDeadLetters(path string) {
	entries, skipped, err := event.ReadDeadLetters(path)
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
		return
	}
	if len(entries) == 0 && skipped == 0 {
		return
	}

	byType := make(map[event.Type]int)
	for _, e := range entries {
		byType[e.Event.Type]++
	}
	for t, n := range byType {
		slog.Warn(LogMsgDeadLettersPending, "path", path, "event_type", t, "count", n)
	}
	if skipped > 0 {
		slog.Warn(LogMsgDeadLettersPending, "path", path, "unreadable_lines", skipped)
	}
}
