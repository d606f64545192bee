// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string `env:"PORT"                envDefault:"8080"`
	TemplateDir     string `env:"MOCKUP_TEMPLATE_DIR" envDefault:"Templates/Digital"`
	CoordinatesPath string `env:"MOCKUP_COORDINATES"  envDefault:"template_coordinates.yaml"`
	OutputDir       string `env:"MOCKUP_OUTPUT_DIR"   envDefault:"generated_mockups"`
	JPEGQuality     int    `env:"MOCKUP_JPEG_QUALITY" envDefault:"95"`
	LogLevel        string `env:"MOCKUP_LOG_LEVEL"    envDefault:"info"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return Config{}, fmt.Errorf("MOCKUP_JPEG_QUALITY must be between 1 and 100, got %d", cfg.JPEGQuality)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("MOCKUP_LOG_LEVEL: %w", err)
	}
	return l, nil
}

// Logger builds the process logger at the configured level.
func (c Config) Logger() *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
