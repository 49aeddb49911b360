//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package runner

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/datasynth/shopgen/internal/profile"
)

// captureSink records written profiles in memory.
type captureSink struct {
	mu   sync.Mutex
	docs map[int]*profile.Finalized
}

func newCaptureSink() *captureSink {
	return &captureSink{docs: make(map[int]*profile.Finalized)}
}

func (c *captureSink) Write(ctx context.Context, index int, p *profile.Finalized) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[index] = p
	return nil
}

func (c *captureSink) Close(ctx context.Context) error { return nil }

func TestRunGeneratesAllProfiles(t *testing.T) {
	sink := newCaptureSink()
	r := New(Config{
		Profiles:     6,
		Workers:      3,
		Seed:         99,
		Start:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 30,
		Sink:         sink,
	})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(sink.docs) != 6 {
		t.Fatalf("sink holds %d profiles, want 6", len(sink.docs))
	}
	for i := 0; i < 6; i++ {
		doc, ok := sink.docs[i]
		if !ok {
			t.Fatalf("profile %d missing", i)
		}
		if doc.ProfileID == "" {
			t.Errorf("profile %d has empty ID", i)
		}
	}
	if got := r.completed.Load(); got != 6 {
		t.Errorf("completed counter %d, want 6", got)
	}
	if got := r.failed.Load(); got != 0 {
		t.Errorf("failed counter %d, want 0", got)
	}
}

func TestRunStartIndexOffsetsBatch(t *testing.T) {
	sink := newCaptureSink()
	r := New(Config{
		Profiles:     3,
		StartIndex:   100,
		Workers:      2,
		Seed:         99,
		Start:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 30,
		Sink:         sink,
	})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(sink.docs) != 3 {
		t.Fatalf("sink holds %d profiles, want 3", len(sink.docs))
	}
	for i := 100; i < 103; i++ {
		doc, ok := sink.docs[i]
		if !ok {
			t.Fatalf("profile %d missing", i)
		}
		if doc.ProfileID != fmt.Sprintf("cust_%05d", i) {
			t.Errorf("profile %d has ID %q", i, doc.ProfileID)
		}
	}
}

func TestRunIsSeedStableAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) map[int]*profile.Finalized {
		sink := newCaptureSink()
		r := New(Config{
			Profiles:     4,
			Workers:      workers,
			Seed:         7,
			Start:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			DurationDays: 30,
			Sink:         sink,
		})
		if err := r.Run(context.Background()); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return sink.docs
	}

	serial := run(1)
	parallel := run(4)

	for i := 0; i < 4; i++ {
		a, b := serial[i], parallel[i]
		if a.ProfileID != b.ProfileID {
			t.Errorf("profile %d: ID %q vs %q", i, a.ProfileID, b.ProfileID)
		}
		if len(a.ActivityLog) != len(b.ActivityLog) {
			t.Errorf("profile %d: %d events serial, %d parallel",
				i, len(a.ActivityLog), len(b.ActivityLog))
		}
		if a.Demographics != b.Demographics {
			t.Errorf("profile %d: demographics differ across worker counts", i)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newCaptureSink()
	r := New(Config{
		Profiles:     1000,
		Workers:      2,
		Seed:         1,
		Start:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 365,
		Sink:         sink,
	})

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run after cancellation returned %v", err)
	}
	if len(sink.docs) == 1000 {
		t.Error("cancelled run still generated every profile")
	}
}
