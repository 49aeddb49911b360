//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for shopgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/config"
	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "shopgen",
		Short: "Synthetic e-commerce customer activity generator",
		Long: `shopgen generates synthetic multi-year customer profiles for a large
online retailer. Each profile carries demographics, device and service
usage, and a full simulated activity log (browsing, purchases, returns,
reviews, media consumption) driven by per-customer behavioral parameters.

Profiles are deterministic for a given seed, statistically diverse across
a batch, and written as one JSON document per customer or as JSONB rows
in PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./shopgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the reference data profiles are sampled from",
	Long: `List the built-in reference data: the life stages a generated customer
can be sampled from (each stage seeds the customer's interests and shifts
their behavioral parameters) and the seasonal activity peaks applied
during simulation.`,
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()
		cmd.Println("Life stages:")
		cmd.Println()
		for _, stage := range cat.LifeStages {
			cmd.Println(fmt.Sprintf("  %-38s ages %2d-%2d  weight %.1f",
				stage.Name, stage.AgeMin, stage.AgeMax, stage.Weight))
		}
		cmd.Println()
		cmd.Println("Seasonal peaks:")
		cmd.Println()
		for _, peak := range cat.Seasons {
			cmd.Println(fmt.Sprintf("  %-38s boost %.2f", peak.Name, peak.Boost))
		}
	},
}
