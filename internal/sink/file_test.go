//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/datasynth/shopgen/internal/profile"
)

func testProfile(id string) *profile.Finalized {
	return &profile.Finalized{
		ProfileID:        id,
		GeneratedAt:      "2024-01-01T00:00:00Z",
		SimulationStart:  "2019-01-01T00:00:00Z",
		SimulationEnd:    "2024-01-01T00:00:00Z",
		InterestsInitial: []string{"Consumer Electronics"},
		InterestsFinal:   []string{"Consumer Electronics", "Smart Home & Security"},
		ActivityLog:      []profile.Event{},
		LifeEvents:       []profile.LifeEvent{},
	}
}

func TestFileSinkWrite(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir, "customer_profile_", false)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	if err := fs.Write(context.Background(), 42, testProfile("cust_00042")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	path := filepath.Join(dir, "customer_profile_00042.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output file at %s: %v", path, err)
	}

	var decoded profile.Finalized
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ProfileID != "cust_00042" {
		t.Errorf("round-tripped profile ID %q", decoded.ProfileID)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output directory holds %d files, want 1", len(entries))
	}
}

func TestFileSinkZeroPadding(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir, "p_", false)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	tests := []struct {
		index int
		want  string
	}{
		{0, "p_00000.json"},
		{7, "p_00007.json"},
		{12345, "p_12345.json"},
	}
	ctx := context.Background()
	for _, tt := range tests {
		if err := fs.Write(ctx, tt.index, testProfile("x")); err != nil {
			t.Fatalf("Write(%d) failed: %v", tt.index, err)
		}
		if _, err := os.Stat(filepath.Join(dir, tt.want)); err != nil {
			t.Errorf("index %d: expected file %q: %v", tt.index, tt.want, err)
		}
	}
}

func TestFileSinkOverwrites(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir, "p_", true)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	ctx := context.Background()
	if err := fs.Write(ctx, 1, testProfile("first")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Write(ctx, 1, testProfile("second")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "p_00001.json"))
	if err != nil {
		t.Fatal(err)
	}
	var decoded profile.Finalized
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ProfileID != "second" {
		t.Errorf("file holds %q after rewrite, want second", decoded.ProfileID)
	}
}
