package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// ConfigFile mirrors the optional config/config.yml. The file only carries
// application tunables; secrets and connection parameters come from the
// environment and always win over file values.
type ConfigFile struct {
	App struct {
		Port        int      `yaml:"port"`
		GinMode     string   `yaml:"gin_mode"`
		LogLevel    string   `yaml:"log_level"`
		LogPretty   bool     `yaml:"log_pretty"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"app"`
	Auth struct {
		BcryptCost       int    `yaml:"bcrypt_cost"`
		TokenTTL         string `yaml:"token_ttl"`
		LoginMaxAttempts int    `yaml:"login_max_attempts"`
		LoginWindow      string `yaml:"login_window"`
	} `yaml:"auth"`
	Storage struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"storage"`
}

// EnvConfig holds the environment-supplied values.
type EnvConfig struct {
	Port          string `env:"PORT"`
	GinMode       string `env:"GIN_MODE"`
	LogLevel      string `env:"LOG_LEVEL"`
	JWTSecret     string `env:"JWT_SECRET"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB, default=0"`
}

// Config is the merged runtime configuration.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	LogPretty   bool
	CORSOrigins []string

	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	TokenTTL  time.Duration

	BcryptCost       int
	LoginMaxAttempts int
	LoginWindow      time.Duration

	StorageTimeout time.Duration
}

// ErrMissingSecret is returned when JWT_SECRET is absent. The service never
// falls back to a baked-in signing key.
var ErrMissingSecret = errors.New("JWT_SECRET is required")

// ErrMissingDSN is returned when no database connection string is configured.
var ErrMissingDSN = errors.New("DATABASE_URL is required")

// Load builds the runtime configuration from the optional yaml file and the
// environment. Tokens live for 24 hours unless the file overrides it.
func Load(ctx context.Context) (*Config, error) {
	file, err := loadConfigFile("config/config.yml")
	if err != nil {
		return nil, err
	}

	var env EnvConfig
	if err := envconfig.Process(ctx, &env); err != nil {
		return nil, fmt.Errorf("could not process environment: %w", err)
	}

	cfg := &Config{
		Port:             "8080",
		GinMode:          "release",
		LogLevel:         "info",
		TokenTTL:         24 * time.Hour,
		BcryptCost:       0, // 0 lets the password service pick bcrypt.DefaultCost
		LoginMaxAttempts: 10,
		LoginWindow:      15 * time.Minute,
		StorageTimeout:   5 * time.Second,
		RedisAddr:        env.RedisAddr,
		RedisPassword:    env.RedisPassword,
		RedisDB:          env.RedisDB,
	}

	if file != nil {
		if file.App.Port != 0 {
			cfg.Port = fmt.Sprintf("%d", file.App.Port)
		}
		if file.App.GinMode != "" {
			cfg.GinMode = file.App.GinMode
		}
		if file.App.LogLevel != "" {
			cfg.LogLevel = file.App.LogLevel
		}
		cfg.LogPretty = file.App.LogPretty
		cfg.CORSOrigins = file.App.CORSOrigins
		if file.Auth.BcryptCost != 0 {
			cfg.BcryptCost = file.Auth.BcryptCost
		}
		if file.Auth.LoginMaxAttempts != 0 {
			cfg.LoginMaxAttempts = file.Auth.LoginMaxAttempts
		}
		if d, err := parseOptionalDuration(file.Auth.TokenTTL); err != nil {
			return nil, fmt.Errorf("invalid token_ttl: %w", err)
		} else if d != 0 {
			cfg.TokenTTL = d
		}
		if d, err := parseOptionalDuration(file.Auth.LoginWindow); err != nil {
			return nil, fmt.Errorf("invalid login_window: %w", err)
		} else if d != 0 {
			cfg.LoginWindow = d
		}
		if d, err := parseOptionalDuration(file.Storage.Timeout); err != nil {
			return nil, fmt.Errorf("invalid storage timeout: %w", err)
		} else if d != 0 {
			cfg.StorageTimeout = d
		}
	}

	// Environment overrides file values.
	if env.Port != "" {
		cfg.Port = env.Port
	}
	if env.GinMode != "" {
		cfg.GinMode = env.GinMode
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}

	cfg.JWTSecret = env.JWTSecret
	cfg.DSN = env.DatabaseURL

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.DSN == "" {
		return nil, ErrMissingDSN
	}

	return cfg, nil
}

// loadConfigFile parses the yaml file at path. A missing file is not an
// error: all tunables have defaults.
func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
