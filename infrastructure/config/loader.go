package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader layers configuration sources. From lowest to highest priority:
//  1. defaults in code
//  2. base.yaml
//  3. <environment>.yaml
//  4. local.yaml (development only)
//  5. environment variables
type Loader struct {
	basePath    string
	environment Environment
	sources     []string
	fileLoaders []FileLoader
}

// FileLoader decodes one configuration file format.
type FileLoader interface {
	Load(reader io.Reader, target interface{}) error
	Extension() string
}

// NewLoader creates a loader reading files from basePath.
func NewLoader(basePath string, env Environment) *Loader {
	if basePath == "" {
		basePath = "config"
	}

	loader := &Loader{
		basePath:    basePath,
		environment: env,
		sources:     make([]string, 0),
	}
	loader.RegisterLoader(&YAMLLoader{})
	loader.RegisterLoader(&JSONLoader{})
	return loader
}

// RegisterLoader adds a file format. Earlier registrations win when two files
// share a base name.
func (l *Loader) RegisterLoader(loader FileLoader) {
	l.fileLoaders = append(l.fileLoaders, loader)
}

// Load builds the final configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults(l.environment)
	l.sources = append(l.sources, "defaults")

	if err := l.loadFile("base", cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load base config: %w", err)
	}

	envFile := strings.ToLower(string(l.environment))
	if err := l.loadFile(envFile, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s config: %w", envFile, err)
	}

	if l.environment == Development {
		if err := l.loadFile("local", cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load local config: %v\n", err)
		}
	}

	applyEnvironmentVariables(cfg)
	l.sources = append(l.sources, "environment")
	cfg.LoadedFrom = l.sources

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile decodes the first <name>.<ext> found into cfg.
func (l *Loader) loadFile(name string, cfg *Config) error {
	for _, loader := range l.fileLoaders {
		path := filepath.Join(l.basePath, fmt.Sprintf("%s.%s", name, loader.Extension()))

		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		err = loader.Load(file, cfg)
		file.Close()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		l.sources = append(l.sources, path)
		return nil
	}
	return os.ErrNotExist
}

// applyEnvironmentVariables overlays variables on cfg. Unset variables keep
// whatever the files produced.
func applyEnvironmentVariables(cfg *Config) {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = Environment(strings.ToLower(v))
	}
	cfg.TimeZone = getEnv("TIME_ZONE", cfg.TimeZone)
	cfg.IsLambda = getEnvBool("IS_LAMBDA", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "")
	cfg.DynamicConfigPath = getEnv("DYNAMIC_CONFIG_PATH", cfg.DynamicConfigPath)

	// Server
	cfg.Server.Address = getEnv("SERVER_ADDRESS", cfg.Server.Address)
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Server.EnableCORS = getEnvBool("ENABLE_CORS", cfg.Server.EnableCORS)
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}

	// Logging
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)

	// Storage
	cfg.Storage.Backend = strings.ToLower(getEnv("STORAGE_BACKEND", cfg.Storage.Backend))
	cfg.Storage.FilePath = getEnv("STORAGE_FILE_PATH", cfg.Storage.FilePath)
	cfg.Storage.DynamoDB.Table = getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", cfg.Storage.DynamoDB.Table))
	cfg.Storage.DynamoDB.Region = getEnv("AWS_REGION", cfg.Storage.DynamoDB.Region)
	cfg.Storage.DynamoDB.Endpoint = getEnv("DYNAMODB_ENDPOINT", cfg.Storage.DynamoDB.Endpoint)
	cfg.Storage.Supabase.URL = getEnv("SUPABASE_URL", cfg.Storage.Supabase.URL)
	cfg.Storage.Supabase.Key = getEnv("SUPABASE_KEY", cfg.Storage.Supabase.Key)
	cfg.Storage.Supabase.Table = getEnv("SUPABASE_TABLE", cfg.Storage.Supabase.Table)

	// Events
	cfg.Events.Enabled = getEnvBool("EVENTS_ENABLED", cfg.Events.Enabled)
	cfg.Events.Provider = getEnv("EVENTS_PROVIDER", cfg.Events.Provider)
	cfg.Events.EventBusName = getEnv("EVENT_BUS_NAME", cfg.Events.EventBusName)

	// Observability
	cfg.Observability.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.Observability.EnableMetrics)
	cfg.Observability.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.Observability.EnableTracing)
	cfg.Observability.ServiceName = getEnv("OTEL_SERVICE_NAME", cfg.Observability.ServiceName)
	cfg.Observability.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Observability.OTLPEndpoint)
	cfg.Observability.SampleRate = getEnvFloat("TRACE_SAMPLE_RATE", cfg.Observability.SampleRate)

	// Circuit breaker
	cfg.CircuitBreaker.Enabled = getEnvBool("CIRCUIT_BREAKER_ENABLED", cfg.CircuitBreaker.Enabled)
	cfg.CircuitBreaker.Timeout = getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", cfg.CircuitBreaker.Timeout)
	cfg.CircuitBreaker.MinRequests = uint32(getEnvInt("CIRCUIT_BREAKER_MIN_REQUESTS", int(cfg.CircuitBreaker.MinRequests)))
	cfg.CircuitBreaker.FailureRatio = getEnvFloat("CIRCUIT_BREAKER_FAILURE_RATIO", cfg.CircuitBreaker.FailureRatio)
}

// YAMLLoader loads configuration from YAML files.
type YAMLLoader struct{}

func (y *YAMLLoader) Load(reader io.Reader, target interface{}) error {
	return yaml.NewDecoder(reader).Decode(target)
}

func (y *YAMLLoader) Extension() string {
	return "yaml"
}

// JSONLoader loads configuration from JSON files. Durations are nanoseconds.
type JSONLoader struct{}

func (j *JSONLoader) Load(reader io.Reader, target interface{}) error {
	return json.NewDecoder(reader).Decode(target)
}

func (j *JSONLoader) Extension() string {
	return "json"
}

// Load reads ./config with the environment named by ENVIRONMENT.
func Load() (*Config, error) {
	return NewLoader(getEnv("CONFIG_PATH", "config"), getEnvironment()).Load()
}

// MustLoad loads configuration and panics on error. Use only from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
