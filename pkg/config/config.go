// Package config loads the YAML configuration shared by the game modes and
// the leaderboard service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dungeon sizes the generated floors.
type Dungeon struct {
	MapWidth    int `yaml:"map_width"`
	MapHeight   int `yaml:"map_height"`
	RoomMinSize int `yaml:"room_min_size"`
	RoomMaxSize int `yaml:"room_max_size"`
	MaxRooms    int `yaml:"max_rooms"`
}

// Bouncer sizes the endless bouncer viewport.
type Bouncer struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// Leaderboard configures the score service and the client.
type Leaderboard struct {
	Addr        string `yaml:"addr"`
	DBType      string `yaml:"db_type"` // memory or postgres
	DatabaseURL string `yaml:"database_url"`
	BaseURL     string `yaml:"base_url"`
}

// Config is the root of the YAML file.
type Config struct {
	Dungeon      Dungeon     `yaml:"dungeon"`
	Bouncer      Bouncer     `yaml:"bouncer"`
	SettingsPath string      `yaml:"settings_path"`
	Leaderboard  Leaderboard `yaml:"leaderboard"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Dungeon: Dungeon{
			MapWidth:    25,
			MapHeight:   18,
			RoomMinSize: 3,
			RoomMaxSize: 8,
			MaxRooms:    8,
		},
		Bouncer: Bouncer{
			ViewportWidth:  800,
			ViewportHeight: 600,
		},
		SettingsPath: "turtledepths-settings.json",
		Leaderboard: Leaderboard{
			Addr:    ":8080",
			DBType:  "memory",
			BaseURL: "http://localhost:8080",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err == nil {
			cfg.Leaderboard.Addr = ":" + port
		}
	}
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.Leaderboard.DBType = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Leaderboard.DatabaseURL = v
	}
	if v := os.Getenv("LEADERBOARD_URL"); v != "" {
		cfg.Leaderboard.BaseURL = v
	}
}

// Validate checks the values generation depends on.
func (c Config) Validate() error {
	d := c.Dungeon
	if d.MapWidth <= 0 || d.MapHeight <= 0 {
		return fmt.Errorf("dungeon map must be positive, got %dx%d", d.MapWidth, d.MapHeight)
	}
	if d.RoomMinSize < 1 || d.RoomMaxSize < d.RoomMinSize {
		return fmt.Errorf("room sizes must satisfy 1 <= min <= max, got %d..%d", d.RoomMinSize, d.RoomMaxSize)
	}
	if d.MaxRooms < 0 {
		return fmt.Errorf("max_rooms must not be negative, got %d", d.MaxRooms)
	}
	if c.Bouncer.ViewportWidth <= 0 || c.Bouncer.ViewportHeight <= 0 {
		return fmt.Errorf("bouncer viewport must be positive, got %vx%v", c.Bouncer.ViewportWidth, c.Bouncer.ViewportHeight)
	}
	switch c.Leaderboard.DBType {
	case "memory":
	case "postgres":
		if c.Leaderboard.DatabaseURL == "" {
			return errors.New("db_type postgres requires database_url or DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown db_type %q", c.Leaderboard.DBType)
	}
	return nil
}
