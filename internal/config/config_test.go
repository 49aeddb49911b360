//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("default log level %q", cfg.LogLevel)
	}
	if cfg.Generate.Profiles != 20000 {
		t.Errorf("default profile count %d", cfg.Generate.Profiles)
	}
	if cfg.Generate.Years != 5 {
		t.Errorf("default years %d", cfg.Generate.Years)
	}
	if cfg.Generate.Output != "file" {
		t.Errorf("default output %q", cfg.Generate.Output)
	}
	if err := cfg.ValidateGenerate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestValidateGenerate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero profiles", func(c *Config) { c.Generate.Profiles = 0 }, true},
		{"negative start index", func(c *Config) { c.Generate.StartIndex = -1 }, true},
		{"positive start index", func(c *Config) { c.Generate.StartIndex = 40000 }, false},
		{"zero years", func(c *Config) { c.Generate.Years = 0 }, true},
		{"zero workers", func(c *Config) { c.Generate.Workers = 0 }, true},
		{"bad start date", func(c *Config) { c.Generate.StartDate = "01/02/2020" }, true},
		{"good start date", func(c *Config) { c.Generate.StartDate = "2020-02-01" }, false},
		{"file without dir", func(c *Config) { c.Generate.OutputDir = "" }, true},
		{"postgres without connection", func(c *Config) { c.Generate.Output = "postgres" }, true},
		{"postgres with connection", func(c *Config) {
			c.Generate.Output = "postgres"
			c.Generate.Connection = "postgres://localhost/synth"
		}, false},
		{"unknown output", func(c *Config) { c.Generate.Output = "s3" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.ValidateGenerate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestStartResolution(t *testing.T) {
	g := GenerateConfig{Years: 5, StartDate: "2019-03-01"}
	want := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := g.Start(); !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}

	g = GenerateConfig{Years: 2}
	got := g.Start()
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("implicit start %v is not midnight", got)
	}
	years := time.Now().UTC().Year() - got.Year()
	if years != 2 {
		t.Errorf("implicit start %v is not two years back", got)
	}
}

func TestDurationDays(t *testing.T) {
	g := GenerateConfig{Years: 5}
	if got := g.DurationDays(); got != 1825 {
		t.Errorf("DurationDays = %d, want 1825", got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generate.Profiles != 20000 {
		t.Errorf("loaded profile count %d, want default", cfg.Generate.Profiles)
	}
}
