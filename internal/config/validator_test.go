package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	t.Run("clean dev config has no warnings", func(t *testing.T) {
		cfg := &Config{Environment: EnvironmentDev, StorageBackend: StorageFile}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("schema version mismatch", func(t *testing.T) {
		cfg := &Config{Environment: EnvironmentDev, EnvSchemaVersion: "0.9"}
		warnings := cfg.Warnings()
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "expected 1.0, got 0.9")
	})

	t.Run("insecure example values", func(t *testing.T) {
		cfg := &Config{
			Environment:    "prod",
			StorageBackend: StoragePostgres,
			DBPassword:     ExampleDBPassword,
			APIKey:         ExampleAPIKey,
		}
		warnings := cfg.Warnings()
		if assert.Len(t, warnings, 2) {
			assert.Contains(t, warnings[0], "DB_PASSWORD")
			assert.Contains(t, warnings[1], "API_KEY")
		}
	})

	t.Run("open API outside dev", func(t *testing.T) {
		cfg := &Config{Environment: "prod", StorageBackend: StorageFile}
		warnings := cfg.Warnings()
		if assert.Len(t, warnings, 1) {
			assert.Contains(t, warnings[0], "unauthenticated")
		}
	})
}
