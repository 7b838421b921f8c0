package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the location of the optional YAML file.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/recipe-rover/config.yaml",
}

// Config holds all configuration for the application
type Config struct {
	Env Environment `koanf:"-"`

	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Auth      AuthConfig      `koanf:"auth"`
	Storage   StorageConfig   `koanf:"storage"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Session   SessionConfig   `koanf:"session"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// ServerConfig holds HTTP listener settings. X-Forwarded-For is only honoured
// from peers in TrustedProxies; the empty default trusts none.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port" validate:"required,numeric"`
	CORSOrigins     []string      `koanf:"cors_origins" validate:"min=1"`
	TrustedProxies  []string      `koanf:"trusted_proxies" validate:"dive,ip|cidr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"oneof=postgres sqlite"`
	Path     string `koanf:"path" validate:"required_if=Driver sqlite"`
	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     string `koanf:"port" validate:"required_if=Driver postgres"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	// MigrationsDir holds *.sql files applied after auto-migration.
	MigrationsDir string `koanf:"migrations_dir"`
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	URL      string `koanf:"url" validate:"omitempty,url"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"min=0"`
}

// Enabled reports whether a redis server is configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type AuthConfig struct {
	// JWTSecret verifies premium entitlement tokens. Empty disables premium.
	JWTSecret string `koanf:"jwt_secret"`
}

type StorageConfig struct {
	Bucket     string        `koanf:"bucket"`
	Region     string        `koanf:"region"`
	PresignTTL time.Duration `koanf:"presign_ttl" validate:"gt=0"`
}

// Enabled reports whether recipe images are served from S3.
func (s StorageConfig) Enabled() bool {
	return s.Bucket != ""
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

type CatalogConfig struct {
	SeedOnEmpty bool `koanf:"seed_on_empty"`
	FreeLimit   int  `koanf:"free_limit" validate:"min=0"`
	PageSize    int  `koanf:"page_size" validate:"min=1,max=100"`
}

type SessionConfig struct {
	TTL            time.Duration `koanf:"ttl" validate:"gt=0"`
	SweepInterval  time.Duration `koanf:"sweep_interval" validate:"gt=0"`
	SearchDebounce time.Duration `koanf:"search_debounce" validate:"gte=0"`
}

type RateLimitConfig struct {
	ExportPerMinute int `koanf:"export_per_minute" validate:"min=1"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			CORSOrigins:     []string{"http://localhost:5173"},
			TrustedProxies:  []string{},
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:  "sqlite",
			Path:    "recipe-rover.db",
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "recipe_rover",
			SSLMode: "disable",

			MigrationsDir: "migrations",
		},
		Storage: StorageConfig{
			Region:     "us-east-1",
			PresignTTL: 15 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			SeedOnEmpty: true,
			FreeLimit:   5,
			PageSize:    9,
		},
		Session: SessionConfig{
			TTL:            30 * time.Minute,
			SweepInterval:  time.Minute,
			SearchDebounce: 300 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			ExportPerMinute: 10,
		},
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML
// file, environment variables and finally secrets, then validates it for
// the current environment.
func LoadConfig() (*Config, error) {
	environment := GetEnvironment()
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := loadSecrets(k, environment); err != nil {
		return nil, fmt.Errorf("failed to load %s secrets: %w", environment, err)
	}

	if err := splitListFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Env = environment

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"server_host":            "server.host",
	"server_port":            "server.port",
	"cors_origins":           "server.cors_origins",
	"trusted_proxies":        "server.trusted_proxies",
	"shutdown_timeout":       "server.shutdown_timeout",
	"db_driver":              "database.driver",
	"db_path":                "database.path",
	"db_host":                "database.host",
	"db_port":                "database.port",
	"db_user":                "database.user",
	"db_password":            "database.password",
	"db_name":                "database.name",
	"db_ssl_mode":            "database.ssl_mode",
	"db_migrations_dir":      "database.migrations_dir",
	"redis_url":              "redis.url",
	"redis_password":         "redis.password",
	"redis_db":               "redis.db",
	"jwt_secret":             "auth.jwt_secret",
	"s3_bucket_name":         "storage.bucket",
	"aws_region":             "storage.region",
	"s3_presign_ttl":         "storage.presign_ttl",
	"log_level":              "logging.level",
	"log_format":             "logging.format",
	"log_caller":             "logging.caller",
	"seed_on_empty":          "catalog.seed_on_empty",
	"free_tier_limit":        "catalog.free_limit",
	"page_size":              "catalog.page_size",
	"session_ttl":            "session.ttl",
	"session_sweep_interval": "session.sweep_interval",
	"search_debounce":        "session.search_debounce",
	"export_rate_per_minute": "rate_limit.export_per_minute",
}

// envTransformFunc maps SERVER_PORT style variables onto config paths.
// Unmapped variables are dropped.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

// secretPaths lists the Docker secrets overlaid on top of the environment.
var secretPaths = map[string]string{
	"db_password":    "database.password",
	"jwt_secret":     "auth.jwt_secret",
	"redis_password": "redis.password",
}

// ciSecretVars are the GitHub Actions secrets used instead of files in CI.
var ciSecretVars = map[string]string{
	"TEST_DB_PASSWORD":    "database.password",
	"TEST_JWT_SECRET":     "auth.jwt_secret",
	"TEST_REDIS_PASSWORD": "redis.password",
}

func loadSecrets(k *koanf.Koanf, environment Environment) error {
	if environment == CI {
		for name, path := range ciSecretVars {
			if v := os.Getenv(name); v != "" {
				if err := k.Set(path, v); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for name, path := range secretPaths {
		v := readSecret(name)
		if v == "" {
			continue
		}
		if err := k.Set(path, v); err != nil {
			return err
		}
	}
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitListFields(k *koanf.Koanf) error {
	for _, path := range []string{"server.cors_origins", "server.trusted_proxies"} {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		out := []string{}
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// RedactedDSN returns the database DSN with the password masked.
func (c *Config) RedactedDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}
	d := c.Database
	if d.Password != "" {
		d.Password = "****"
	}
	return d.DSN()
}
