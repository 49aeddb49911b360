//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/runner"
	"github.com/datasynth/shopgen/internal/sink"
)

var (
	genProfiles       int
	genStartIndex     int
	genYears          int
	genStartDate      string
	genSeed           uint64
	genWorkers        int
	genReportInterval int
	genOutput         string
	genOutputDir      string
	genFilePrefix     string
	genPretty         bool
	genConnection     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of synthetic customer profiles",
	Long: `Generate N customer profiles, each with a complete simulated activity
history over the configured number of years. Profiles are generated in
parallel and written as they complete.

A fixed --seed reproduces the exact same batch regardless of worker
count: profile N always derives its random source from seed+N.

Example:
  shopgen generate --profiles 1000 --years 5 --output-dir ./profiles
  shopgen generate --profiles 50 --seed 42 --pretty
  shopgen generate --output postgres --connection "postgres://localhost/synth"`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genProfiles, "profiles", 0,
		"number of profiles to generate")
	generateCmd.Flags().IntVar(&genStartIndex, "start-index", 0,
		"index of the first profile (continue an earlier batch)")
	generateCmd.Flags().IntVar(&genYears, "years", 0,
		"simulated activity duration in years")
	generateCmd.Flags().StringVar(&genStartDate, "start-date", "",
		"simulation start date (YYYY-MM-DD, default: years back from today)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"base random seed (profile N uses seed+N)")
	generateCmd.Flags().IntVar(&genWorkers, "workers", 0,
		"number of concurrent generation workers")
	generateCmd.Flags().IntVar(&genReportInterval, "report-interval", 0,
		"progress reporting interval in seconds")
	generateCmd.Flags().StringVar(&genOutput, "output", "",
		"output sink: file or postgres")
	generateCmd.Flags().StringVar(&genOutputDir, "output-dir", "",
		"directory for JSON output (file sink)")
	generateCmd.Flags().StringVar(&genFilePrefix, "file-prefix", "",
		"file name prefix for JSON output (file sink)")
	generateCmd.Flags().BoolVar(&genPretty, "pretty", false,
		"write indented JSON (file sink)")
	generateCmd.Flags().StringVar(&genConnection, "connection", "",
		"PostgreSQL connection string (postgres sink)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if genProfiles > 0 {
		cfg.Generate.Profiles = genProfiles
	}
	if cmd.Flags().Changed("start-index") {
		cfg.Generate.StartIndex = genStartIndex
	}
	if genYears > 0 {
		cfg.Generate.Years = genYears
	}
	if genStartDate != "" {
		cfg.Generate.StartDate = genStartDate
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if genWorkers > 0 {
		cfg.Generate.Workers = genWorkers
	}
	if genReportInterval > 0 {
		cfg.Generate.ReportInterval = genReportInterval
	}
	if genOutput != "" {
		cfg.Generate.Output = genOutput
	}
	if genOutputDir != "" {
		cfg.Generate.OutputDir = genOutputDir
	}
	if genFilePrefix != "" {
		cfg.Generate.FilePrefix = genFilePrefix
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Generate.Pretty = genPretty
	}
	if genConnection != "" {
		cfg.Generate.Connection = genConnection
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	}()

	out, err := openSink(ctx)
	if err != nil {
		return err
	}
	defer out.Close(context.Background())

	r := runner.New(runner.Config{
		Profiles:       cfg.Generate.Profiles,
		StartIndex:     cfg.Generate.StartIndex,
		Workers:        cfg.Generate.Workers,
		Seed:           cfg.Generate.Seed,
		Start:          cfg.Generate.Start(),
		DurationDays:   cfg.Generate.DurationDays(),
		ReportInterval: cfg.Generate.ReportInterval,
		Sink:           out,
	})

	err = r.Run(ctx)
	r.PrintSummary()
	return err
}

func openSink(ctx context.Context) (sink.Sink, error) {
	switch cfg.Generate.Output {
	case "postgres":
		maxConns := int32(cfg.Generate.Workers)
		return sink.NewPostgresSink(ctx, cfg.Generate.Connection, maxConns)
	default:
		s, err := sink.NewFileSink(cfg.Generate.OutputDir, cfg.Generate.FilePrefix, cfg.Generate.Pretty)
		if err != nil {
			return nil, fmt.Errorf("failed to open output directory: %w", err)
		}
		return s, nil
	}
}
