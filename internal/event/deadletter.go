package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/osse101/skillforge/internal/logger"
)

// DeadLetterSchemaVersion is bumped whenever DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one line of the dead-letter file.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewDeadLetterWriter opens path for appending, creating it when missing.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends one entry. Lines are written whole so a crash never leaves a
// half entry in the middle of the file.
func (dlw *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode dead letter for %s: %w", evt.Type, err)
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"owner_id", evt.OwnerID,
		"attempts", attempts,
		"error", entry.LastError)

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	_, err = dlw.file.Write(append(line, '\n'))
	return err
}

// Close closes the file.
func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return dlw.file.Close()
}

// ReadDeadLetters returns every readable entry of the file at path, oldest
// first. A missing file has no entries. Lines that fail to decode, such as a
// torn final line, are counted in skipped. Payloads come back as raw JSON;
// use DecodePayload to type them.
func ReadDeadLetters(path string) (entries []DeadLetterEntry, skipped int, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), DeadLetterMaxLineBytes)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var raw struct {
			DeadLetterEntry
			Event struct {
				Event
				Payload json.RawMessage `json:"payload"`
			} `json:"event"`
		}
		if err := json.Unmarshal(sc.Bytes(), &raw); err != nil {
			skipped++
			continue
		}
		entry := raw.DeadLetterEntry
		entry.Event = raw.Event.Event
		entry.Event.Payload = raw.Event.Payload
		entries = append(entries, entry)
	}
	return entries, skipped, sc.Err()
}
