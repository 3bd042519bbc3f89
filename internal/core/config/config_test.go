package config

import (
	"testing"

	"github.com/f9-o/primitive/pkg/errs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PRIMITIVE_LOG_LEVEL", "")
	t.Setenv("PRIMITIVE_LOG_FORMAT", "")
	t.Setenv("PRIMITIVE_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default level warn, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected default format text, got %q", cfg.Log.Format)
	}
	if cfg.Debug {
		t.Errorf("expected debug off by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PRIMITIVE_LOG_LEVEL", "DEBUG")
	t.Setenv("PRIMITIVE_LOG_FORMAT", "json")
	t.Setenv("PRIMITIVE_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Log.Format)
	}
	if !cfg.Debug {
		t.Errorf("expected debug on")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name, level, format string
	}{
		{"bad level", "loud", "text"},
		{"bad format", "info", "xml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PRIMITIVE_LOG_LEVEL", tc.level)
			t.Setenv("PRIMITIVE_LOG_FORMAT", tc.format)

			_, err := Load()
			if !errs.IsCode(err, errs.ErrConfig) {
				t.Fatalf("Load() = %v, want code %s", err, errs.ErrConfig)
			}
		})
	}
}
