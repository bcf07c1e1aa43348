package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Identity verification modes
const (
	IdentityModeFirebase = "firebase"
	IdentityModeOIDC     = "oidc"
	IdentityModeHS256    = "hs256"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		PublicDir       string        `yaml:"public_dir" env:"SERVER_PUBLIC_DIR"`
		AppDir          string        `yaml:"app_dir" env:"SERVER_APP_DIR"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string        `yaml:"host" env:"DATABASE_HOST"`
		Port            string        `yaml:"port" env:"DATABASE_PORT"`
		User            string        `yaml:"user" env:"DATABASE_USER"`
		Password        string        `yaml:"password" env:"DATABASE_PASSWORD"`
		Schema          string        `yaml:"schema" env:"DATABASE_SCHEMA"`
		SSLMode         string        `yaml:"sslmode" env:"DATABASE_SSLMODE"`
		MaxConns        int           `yaml:"max_conns" env:"DATABASE_MAX_CONNS"`
		MinConns        int           `yaml:"min_conns" env:"DATABASE_MIN_CONNS"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
		QueryTimeout    time.Duration `yaml:"query_timeout" env:"DATABASE_QUERY_TIMEOUT"`
	} `yaml:"database"`

	Identity struct {
		Mode            string `yaml:"mode" env:"IDENTITY_MODE"`
		CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
		ProjectID       string `yaml:"project_id" env:"IDENTITY_PROJECT_ID"`
		IssuerURL       string `yaml:"issuer_url" env:"IDENTITY_ISSUER_URL"`
		Audience        string `yaml:"audience" env:"IDENTITY_AUDIENCE"`
		Secret          string `yaml:"secret" env:"IDENTITY_SECRET"`
	} `yaml:"identity"`

	RateLimit struct {
		Enabled           bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
		RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"`
		Burst             int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional YAML file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Environment wins over the file; unset variables leave the field alone.
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.PublicDir = "public"
	config.Server.AppDir = "public/apps/course-planner"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 15 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Schema = "course_planner"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 10
	config.Database.MinConns = 1
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.QueryTimeout = 10 * time.Second

	config.Identity.Mode = IdentityModeFirebase

	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerSecond = 20
	config.RateLimit.Burst = 40

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.Schema == "" {
		return fmt.Errorf("database schema is required")
	}

	if config.Database.MaxConns < 1 {
		return fmt.Errorf("database max_conns must be at least 1")
	}

	switch config.Identity.Mode {
	case IdentityModeFirebase:
		if config.Identity.ProjectID == "" && config.Identity.CredentialsFile == "" {
			return fmt.Errorf("firebase identity mode requires a project id or a credentials file")
		}
	case IdentityModeOIDC:
		if config.Identity.IssuerURL == "" {
			return fmt.Errorf("oidc identity mode requires an issuer url")
		}
	case IdentityModeHS256:
		if config.Identity.Secret == "" {
			return fmt.Errorf("hs256 identity mode requires a secret")
		}
	default:
		return fmt.Errorf("unknown identity mode %q", config.Identity.Mode)
	}

	if config.RateLimit.Enabled && (config.RateLimit.RequestsPerSecond <= 0 || config.RateLimit.Burst < 1) {
		return fmt.Errorf("rate limit requires positive requests_per_second and burst")
	}

	return nil
}

// PostgresConnectionString returns the postgres connection url
func (c *Config) PostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.Schema,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
