//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink persists finalized profiles. The file sink writes one JSON
// document per profile; the postgres sink upserts documents into a JSONB
// column for downstream querying.
package sink

import (
	"context"

	"github.com/datasynth/shopgen/internal/profile"
)

// Sink receives finalized profiles. Implementations must be safe for
// concurrent Write calls from multiple workers.
type Sink interface {
	Write(ctx context.Context, index int, p *profile.Finalized) error
	Close(ctx context.Context) error
}
