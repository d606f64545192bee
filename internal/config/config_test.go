package config

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MOCKUP_TEMPLATE_DIR", "MOCKUP_COORDINATES", "MOCKUP_OUTPUT_DIR", "MOCKUP_JPEG_QUALITY", "MOCKUP_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JPEGQuality != 95 {
		t.Errorf("JPEGQuality = %d", cfg.JPEGQuality)
	}
	if cfg.TemplateDir != "Templates/Digital" {
		t.Errorf("TemplateDir = %q", cfg.TemplateDir)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MOCKUP_JPEG_QUALITY", "80")
	t.Setenv("MOCKUP_LOG_LEVEL", "debug")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Port != "9000" || cfg.JPEGQuality != 80 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug logging not enabled")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"quality too high", "MOCKUP_JPEG_QUALITY", "101"},
		{"quality zero", "MOCKUP_JPEG_QUALITY", "0"},
		{"quality not a number", "MOCKUP_JPEG_QUALITY", "high"},
		{"unknown level", "MOCKUP_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Parse(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
