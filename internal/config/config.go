package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rpggio/liftlog/internal/domain/plan"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Stats     StatsConfig     `yaml:"stats"`
	Plans     plan.Catalog    `yaml:"plans"`
	Exercises []string        `yaml:"exercises"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
	// Tee also writes to the console when Path is set.
	Tee bool `yaml:"tee"`
}

// StatsConfig controls the weekly summary view.
type StatsConfig struct {
	Weeks int `yaml:"weeks"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Variables in a .env file (or LIFTLOG_ENV_FILE) are loaded first
// without overriding the real environment.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Default()

	if path := os.Getenv("LIFTLOG_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("LIFTLOG_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LIFTLOG_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LIFTLOG_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("LIFTLOG_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("LIFTLOG_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("LIFTLOG_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("LIFTLOG_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if tee := os.Getenv("LIFTLOG_LOG_TEE"); tee != "" {
		v, err := strconv.ParseBool(tee)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LIFTLOG_LOG_TEE: %w", err)
		}
		cfg.Log.Tee = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		DB: DBConfig{
			Path: "liftlog.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Stats: StatsConfig{
			Weeks: 4,
		},
		Plans:     plan.Default(),
		Exercises: DefaultExercises(),
	}
}

// Validate checks values that would otherwise fail at startup.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if len(c.Plans) == 0 {
		return fmt.Errorf("at least one plan is required")
	}
	if err := c.Plans.Validate(); err != nil {
		return fmt.Errorf("invalid plans: %w", err)
	}
	return nil
}

// DefaultExercises is the starting suggestion list.
func DefaultExercises() []string {
	return []string{
		"Bench Press",
		"Incline Bench Press",
		"Dumbbell Press",
		"Cable Fly",
		"Push Up",
		"Tricep Pushdown",
		"Overhead Tricep Extension",
		"Lat Pulldown",
		"Pull Up",
		"Barbell Row",
		"Seated Row",
		"Deadlift",
		"Bicep Curl",
		"Hammer Curl",
		"Squat",
		"Leg Press",
		"Romanian Deadlift (RDL)",
		"Leg Extension",
		"Leg Curl",
		"Calf Raise",
		"Overhead Press",
		"Lateral Raise",
		"Rear Delt Fly",
		"Plank",
		"Crunch",
		"Hanging Leg Raise",
		"Running",
		"Cycling",
		"Stairmaster",
	}
}

func loadDotEnv() error {
	path := os.Getenv("LIFTLOG_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
