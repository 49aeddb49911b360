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
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/profile"
)

const profileSchema = `
CREATE TABLE IF NOT EXISTS customer_profiles (
    profile_id   TEXT PRIMARY KEY,
    generated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    doc          JSONB NOT NULL
)`

const profileUpsert = `
INSERT INTO customer_profiles (profile_id, doc)
VALUES ($1, $2)
ON CONFLICT (profile_id) DO UPDATE
SET doc = EXCLUDED.doc, generated_at = now()`

// PostgresSink upserts finalized profiles into a JSONB column so a run can
// be repeated without dropping the table first.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink connects to the database, ensures the target table exists,
// and returns a sink writing into it.
func NewPostgresSink(ctx context.Context, connString string, maxConns int32) (*PostgresSink, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = min(2, maxConns)
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Uint16("port", config.ConnConfig.Port).
		Str("database", config.ConnConfig.Database).
		Int32("max_conns", maxConns).
		Msg("Connecting to database")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, profileSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create customer_profiles table: %w", err)
	}

	logging.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connected to database")

	return &PostgresSink{pool: pool}, nil
}

// Write upserts one profile document keyed by its profile ID.
func (ps *PostgresSink) Write(ctx context.Context, index int, p *profile.Finalized) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile %s: %w", p.ProfileID, err)
	}
	if _, err := ps.pool.Exec(ctx, profileUpsert, p.ProfileID, doc); err != nil {
		return fmt.Errorf("upserting profile %s: %w", p.ProfileID, err)
	}
	return nil
}

// Close releases the connection pool.
func (ps *PostgresSink) Close(ctx context.Context) error {
	ps.pool.Close()
	return nil
}
