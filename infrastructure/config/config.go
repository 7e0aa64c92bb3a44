// Package config loads static service configuration and watches the
// runtime-changeable limits and feature flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment is the deployment stage.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageDynamoDB = "dynamodb"
	StorageSupabase = "supabase"
)

// Config holds all application configuration
type Config struct {
	Environment Environment `yaml:"environment" json:"environment"`
	TimeZone    string      `yaml:"time_zone" json:"time_zone"` // IANA name, empty means local

	Server         Server         `yaml:"server" json:"server"`
	Logging        Logging        `yaml:"logging" json:"logging"`
	Storage        Storage        `yaml:"storage" json:"storage"`
	Events         Events         `yaml:"events" json:"events"`
	Observability  Observability  `yaml:"observability" json:"observability"`
	CircuitBreaker CircuitBreaker `yaml:"circuit_breaker" json:"circuit_breaker"`

	// DynamicConfigPath points at the watched limits/features file. Empty
	// disables watching and the built-in defaults apply.
	DynamicConfigPath string `yaml:"dynamic_config_path" json:"dynamic_config_path"`

	IsLambda   bool     `yaml:"-" json:"-"`
	LoadedFrom []string `yaml:"-" json:"-"`
}

// Server holds HTTP server settings
type Server struct {
	Address         string        `yaml:"address" json:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	EnableCORS      bool          `yaml:"enable_cors" json:"enable_cors"`
	AllowedOrigins  []string      `yaml:"allowed_origins" json:"allowed_origins"`
}

// Logging holds logger settings
type Logging struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // json or console
}

// Storage selects and configures the key-value backend
type Storage struct {
	Backend  string   `yaml:"backend" json:"backend"`
	FilePath string   `yaml:"file_path" json:"file_path"`
	DynamoDB DynamoDB `yaml:"dynamodb" json:"dynamodb"`
	Supabase Supabase `yaml:"supabase" json:"supabase"`
}

// DynamoDB holds the table backing the dynamodb store
type DynamoDB struct {
	Table    string `yaml:"table" json:"table"`
	Region   string `yaml:"region" json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"` // for DynamoDB Local
}

// Supabase holds the PostgREST table backing the supabase store
type Supabase struct {
	URL   string `yaml:"url" json:"url"`
	Key   string `yaml:"key" json:"key"`
	Table string `yaml:"table" json:"table"`
}

// Events configures domain event publishing
type Events struct {
	Enabled      bool   `yaml:"enabled" json:"enabled"`
	Provider     string `yaml:"provider" json:"provider"` // eventbridge or local
	EventBusName string `yaml:"event_bus_name" json:"event_bus_name"`
}

// Observability configures metrics and tracing
type Observability struct {
	EnableMetrics bool    `yaml:"enable_metrics" json:"enable_metrics"`
	EnableTracing bool    `yaml:"enable_tracing" json:"enable_tracing"`
	ServiceName   string  `yaml:"service_name" json:"service_name"`
	OTLPEndpoint  string  `yaml:"otlp_endpoint" json:"otlp_endpoint"`
	SampleRate    float64 `yaml:"sample_rate" json:"sample_rate"`
}

// CircuitBreaker configures the breaker around the storage backend
type CircuitBreaker struct {
	Enabled      bool          `yaml:"enabled" json:"enabled"`
	MaxRequests  uint32        `yaml:"max_requests" json:"max_requests"` // allowed while half-open
	Interval     time.Duration `yaml:"interval" json:"interval"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout"` // open -> half-open
	MinRequests  uint32        `yaml:"min_requests" json:"min_requests"`
	FailureRatio float64       `yaml:"failure_ratio" json:"failure_ratio"`
}

// Defaults returns a configuration that runs without any file or variable.
func Defaults(env Environment) *Config {
	return &Config{
		Environment: env,
		Server: Server{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			EnableCORS:      true,
			AllowedOrigins:  []string{"*"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
		Storage: Storage{
			Backend:  StorageMemory,
			FilePath: "data/between.json",
			DynamoDB: DynamoDB{
				Table:  "between-" + strings.ToLower(string(env)),
				Region: "us-east-1",
			},
			Supabase: Supabase{
				Table: "kv_store",
			},
		},
		Events: Events{
			Enabled:      false,
			Provider:     "local",
			EventBusName: "between-events",
		},
		Observability: Observability{
			EnableMetrics: true,
			ServiceName:   "between-api",
			OTLPEndpoint:  "localhost:4317",
			SampleRate:    0.1,
		},
		CircuitBreaker: CircuitBreaker{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     10 * time.Second,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.5,
		},
	}
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	if c.Server.Address == "" && !c.IsLambda {
		return fmt.Errorf("server address is required")
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console, got %q", c.Logging.Format)
	}

	switch c.Storage.Backend {
	case StorageMemory:
		if c.IsProduction() {
			return fmt.Errorf("memory storage is not allowed in production")
		}
	case StorageFile:
		if c.Storage.FilePath == "" {
			return fmt.Errorf("STORAGE_FILE_PATH is required for the file backend")
		}
	case StorageDynamoDB:
		if c.Storage.DynamoDB.Table == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required for the dynamodb backend")
		}
	case StorageSupabase:
		if c.Storage.Supabase.URL == "" || c.Storage.Supabase.Key == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase backend")
		}
		if c.Storage.Supabase.Table == "" {
			return fmt.Errorf("SUPABASE_TABLE is required for the supabase backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Events.Enabled {
		switch c.Events.Provider {
		case "eventbridge":
			if c.Events.EventBusName == "" {
				return fmt.Errorf("EVENT_BUS_NAME is required")
			}
		case "local":
		default:
			return fmt.Errorf("unknown event provider %q", c.Events.Provider)
		}
	}

	if c.CircuitBreaker.Enabled {
		if c.CircuitBreaker.FailureRatio <= 0 || c.CircuitBreaker.FailureRatio > 1 {
			return fmt.Errorf("circuit breaker failure ratio must be in (0, 1]")
		}
	}

	if c.Observability.SampleRate < 0 || c.Observability.SampleRate > 1 {
		return fmt.Errorf("trace sample rate must be in [0, 1]")
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone. Date keys are computed in this location.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// getEnvironment reads ENVIRONMENT, defaulting to development
func getEnvironment() Environment {
	return Environment(strings.ToLower(getEnv("ENVIRONMENT", string(Development))))
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
