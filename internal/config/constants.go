package config

// ExpectedEnvSchemaVersion is the .env layout this build was written against
const ExpectedEnvSchemaVersion = "1.0"

// Storage backends
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// EnvironmentDev is the default environment, where an open API is acceptable
const EnvironmentDev = "dev"
