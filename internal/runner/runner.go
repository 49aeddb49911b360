//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package runner drives profile generation across a worker pool: each
// worker draws profile indexes from a shared feed, builds the profile,
// simulates its activity history, and hands the finalized document to the
// configured sink.
package runner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/profile"
	"github.com/datasynth/shopgen/internal/sim"
	"github.com/datasynth/shopgen/internal/sink"
)

// Config holds configuration for a generation run.
type Config struct {
	Profiles       int
	StartIndex     int
	Workers        int
	Seed           uint64
	Start          time.Time
	DurationDays   int
	ReportInterval int // seconds, 0 disables progress reporting
	Sink           sink.Sink
}

// Runner manages the generation run.
type Runner struct {
	catalog        *catalog.Catalog
	profiles       int
	startIndex     int
	workers        int
	seed           uint64
	start          time.Time
	durationDays   int
	reportInterval time.Duration
	sink           sink.Sink

	// Metrics
	completed   atomic.Int64
	failed      atomic.Int64
	totalEvents atomic.Int64
	startTime   time.Time
}

// New creates a runner over the default catalog.
func New(cfg Config) *Runner {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		catalog:        catalog.Default(),
		profiles:       cfg.Profiles,
		startIndex:     cfg.StartIndex,
		workers:        workers,
		seed:           cfg.Seed,
		start:          cfg.Start,
		durationDays:   cfg.DurationDays,
		reportInterval: time.Duration(cfg.ReportInterval) * time.Second,
		sink:           cfg.Sink,
	}
}

// Run generates all profiles and blocks until the pool drains or the
// context is cancelled. It returns an error if any profile failed.
func (r *Runner) Run(ctx context.Context) error {
	r.startTime = time.Now()

	logging.Info().
		Int("profiles", r.profiles).
		Int("start_index", r.startIndex).
		Int("workers", r.workers).
		Uint64("seed", r.seed).
		Time("simulation_start", r.start).
		Int("duration_days", r.durationDays).
		Msg("Starting generation run")

	indexes := make(chan int)

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.worker(ctx, workerID, indexes)
		}(i)
	}

	// Start reporter
	reporterCtx, stopReporter := context.WithCancel(ctx)
	defer stopReporter()
	if r.reportInterval > 0 {
		go r.reporter(reporterCtx)
	}

	// Feed profile indexes until done or cancelled
feed:
	for i := r.startIndex; i < r.startIndex+r.profiles; i++ {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)

	wg.Wait()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if n := r.failed.Load(); n > 0 {
		return &RunError{Failed: n}
	}
	return nil
}

// RunError reports how many profiles could not be generated.
type RunError struct {
	Failed int64
}

func (e *RunError) Error() string {
	return "generation run completed with failures"
}

// worker generates profiles one at a time. Each profile gets its own
// deterministic random source derived from the run seed and the profile
// index, so results are independent of worker scheduling.
func (r *Runner) worker(ctx context.Context, id int, indexes <-chan int) {
	logging.Debug().Int("worker_id", id).Msg("Worker started")

	for index := range indexes {
		if ctx.Err() != nil {
			logging.Debug().Int("worker_id", id).Msg("Worker stopped")
			return
		}

		if err := r.generate(ctx, index); err != nil {
			// Context cancellation at shutdown is not a generation failure
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			r.failed.Add(1)
			logging.Error().
				Err(err).
				Int("worker_id", id).
				Int("profile_index", index).
				Msg("Profile generation failed")
		}
	}

	logging.Debug().Int("worker_id", id).Msg("Worker finished")
}

func (r *Runner) generate(ctx context.Context, index int) error {
	f := datagen.NewFakerWithSeed(r.seed + uint64(index))

	shell, err := profile.New(f, r.catalog, index, r.start, r.durationDays)
	if err != nil {
		return err
	}

	doc, err := sim.Simulate(f, r.catalog, shell)
	if err != nil {
		return err
	}

	if err := r.sink.Write(ctx, index, doc); err != nil {
		return err
	}

	r.completed.Add(1)
	r.totalEvents.Add(int64(len(doc.ActivityLog)))
	return nil
}

func (r *Runner) reporter(ctx context.Context) {
	ticker := time.NewTicker(r.reportInterval)
	defer ticker.Stop()

	var lastCompleted int64
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			completed := r.completed.Load()
			failed := r.failed.Load()
			events := r.totalEvents.Load()

			elapsed := now.Sub(lastTime).Seconds()
			rate := float64(completed-lastCompleted) / elapsed

			var avgEvents float64
			if completed > 0 {
				avgEvents = float64(events) / float64(completed)
			}

			logging.Info().
				Int64("completed", completed).
				Int64("failed", failed).
				Int("total", r.profiles).
				Float64("rate_per_sec", rate).
				Float64("avg_events_per_profile", avgEvents).
				Msg("Progress")

			lastCompleted = completed
			lastTime = now
		}
	}
}

// PrintSummary prints a final summary of the generation run.
func (r *Runner) PrintSummary() {
	elapsed := time.Since(r.startTime)
	completed := r.completed.Load()
	failed := r.failed.Load()
	events := r.totalEvents.Load()

	var avgEvents float64
	if completed > 0 {
		avgEvents = float64(events) / float64(completed)
	}

	logging.Info().
		Dur("duration", elapsed).
		Int64("completed", completed).
		Int64("failed", failed).
		Int64("total_events", events).
		Float64("avg_events_per_profile", avgEvents).
		Float64("profiles_per_sec", float64(completed)/elapsed.Seconds()).
		Msg("Final summary")
}
