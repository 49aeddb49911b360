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
	"os"
	"path/filepath"

	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/profile"
)

const filenameDigits = 5

// FileSink writes each profile as a standalone JSON document named
// <prefix><zero-padded index>.json under a single output directory.
type FileSink struct {
	dir    string
	prefix string
	pretty bool
}

// NewFileSink creates the output directory if needed and returns a sink
// writing into it.
func NewFileSink(dir, prefix string, pretty bool) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	logging.Debug().
		Str("dir", dir).
		Str("prefix", prefix).
		Msg("File sink ready")
	return &FileSink{dir: dir, prefix: prefix, pretty: pretty}, nil
}

// Write serializes the profile and moves it into place atomically so a
// crashed run never leaves a truncated document behind.
func (fs *FileSink) Write(ctx context.Context, index int, p *profile.Finalized) error {
	var (
		data []byte
		err  error
	)
	if fs.pretty {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = json.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("marshaling profile %s: %w", p.ProfileID, err)
	}

	name := fmt.Sprintf("%s%0*d.json", fs.prefix, filenameDigits, index)
	final := filepath.Join(fs.dir, name)

	tmp, err := os.CreateTemp(fs.dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s into place: %w", name, err)
	}
	return nil
}

// Close is a no-op for the file sink.
func (fs *FileSink) Close(ctx context.Context) error {
	return nil
}
