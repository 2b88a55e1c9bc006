package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration for the sahaj commands. Values are
// resolved in order: defaults, then the yaml file, then SAHAJ_* environment
// variables.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SessionConfig struct {
	// TTL evicts idle sessions. Zero keeps them forever.
	TTL time.Duration `yaml:"ttl"`
}

type RedisConfig struct {
	// Enabled switches session persistence from memory to Redis.
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Session: SessionConfig{TTL: 0},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			Prefix:  "sahaj:session:",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load resolves the configuration. A missing file is not an error, the
// defaults apply; a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env overrides.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SAHAJ_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SAHAJ_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SAHAJ_SESSION_TTL: %w", err)
		}
		c.Session.TTL = ttl
	}
	if v := os.Getenv("SAHAJ_REDIS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SAHAJ_REDIS_ENABLED: %w", err)
		}
		c.Redis.Enabled = enabled
	}
	if v := os.Getenv("SAHAJ_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("SAHAJ_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("SAHAJ_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SAHAJ_REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}
	if v := os.Getenv("SAHAJ_REDIS_PREFIX"); v != "" {
		c.Redis.Prefix = v
	}
	if v := os.Getenv("SAHAJ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// ParseLevel maps a level name to its slog level. Unknown names default to
// info with an error, so a typo degrades loudly but does not silence logs.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
