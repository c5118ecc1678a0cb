// Package store persists the event and approval collections as whole-file
// JSON documents. Every read loads the file fresh; every mutation rewrites
// the file in full under a per-collection mutex with an atomic replace.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a referenced event id is absent.
var ErrNotFound = errors.New("event not found")

// ErrCorrupt wraps a JSON decode failure of an on-disk collection, so
// callers can distinguish a damaged store from a missing record.
var ErrCorrupt = errors.New("store file corrupt")

// collection is one JSON document on disk. A missing file reads as an
// empty collection; it is created on first save.
type collection struct {
	path string
	mu   sync.Mutex
}

// load decodes the document into v. Callers must hold mu when the read is
// part of a read-modify-write cycle.
func (c *collection) load(v any) error {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", c.path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load %s: %w: %w", c.path, ErrCorrupt, err)
	}
	return nil
}

// save rewrites the document in full. Write-to-temp plus rename keeps a
// crashed write from leaving a torn file behind.
func (c *collection) save(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	return nil
}
