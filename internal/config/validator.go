package config

import "fmt"

// Warnings reports non-critical issues with a loaded config, such as example
// secrets or an unauthenticated API outside development.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}

	if c.StorageBackend == StoragePostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	switch {
	case c.APIKey == ExampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case c.APIKey == "" && c.Environment != EnvironmentDev:
		warnings = append(warnings, "API_KEY is not set - the profile API is unauthenticated")
	}

	return warnings
}
