package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogSource   bool   `env:"LOG_SOURCE" envDefault:"false"`
	LogDir      string `env:"LOG_DIR"` // optional; when set each run also logs to a session file
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"skillforge" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // optional; when set /api requires X-API-Key

	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576" validate:"min=1024"`
	RateLimit       int      `env:"RATE_LIMIT" envDefault:"1000" validate:"min=1"`

	// EnvSchemaVersion tracks the .env layout; a mismatch only warns
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	// Storage
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"file" validate:"oneof=file sqlite postgres"`
	DataDir        string        `env:"DATA_DIR" envDefault:"data" validate:"required"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"data/skillforge.db"`
	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBName         string        `env:"DB_NAME" envDefault:"skillforge"`
	DBMaxConns     int           `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`
	DBMaxConnIdle  time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife  time.Duration `env:"DB_MAX_CONN_LIFE" envDefault:"1h"`

	ProfileCacheSize int           `env:"PROFILE_CACHE_SIZE" envDefault:"1024" validate:"min=0"`
	ProfileCacheTTL  time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"5m" validate:"min=0"`

	// Catalogue overrides; empty means the embedded defaults
	TreeConfigDir   string `env:"TREE_CONFIG_DIR"`
	RewardConfigDir string `env:"REWARD_CONFIG_DIR"`

	// Background work
	PlaytimeTick    time.Duration `env:"PLAYTIME_TICK" envDefault:"1s" validate:"gt=0"`
	WorkerCount     int           `env:"WORKER_COUNT" envDefault:"4" validate:"min=1"`
	WorkerQueueSize int           `env:"WORKER_QUEUE_SIZE" envDefault:"256" validate:"min=1"`

	// Event delivery
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"min=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s" validate:"gt=0"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"data/events_deadletter.jsonl" validate:"required"`

	// Tracing is enabled when an OTLP endpoint is configured
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return envKey(f)
	})
	return v
}

// envKey is the environment variable behind a Config field, or the field name
// when it has none.
func envKey(f reflect.StructField) string {
	if key, _, _ := strings.Cut(f.Tag.Get("env"), ","); key != "" {
		return key
	}
	return f.Name
}

// describeParseError names the environment variable of every field env could
// not parse.
func describeParseError(err error) error {
	errs := []error{err}
	var agg env.AggregateError
	if errors.As(err, &agg) {
		errs = agg.Errors
	}
	cfgType := reflect.TypeOf(Config{})
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		var pe env.ParseError
		if !errors.As(e, &pe) {
			msgs = append(msgs, e.Error())
			continue
		}
		key := pe.Name
		if f, ok := cfgType.FieldByName(pe.Name); ok {
			key = envKey(f)
		}
		msgs = append(msgs, fmt.Sprintf("%s: %v", key, pe.Err))
	}
	return fmt.Errorf("parse env: %s: %w", strings.Join(msgs, "; "), err)
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, describeParseError(err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
