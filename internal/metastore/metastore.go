// Package metastore persists the hash to entry mapping as a single TOML
// document. The document is read fully and rewritten fully on every
// mutation; callers reload before each operation instead of caching.
package metastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/shimeoki/wallpapers/internal/models"
)

// Store reads and writes the metadata document at a fixed path.
type Store struct {
	path string
}

// New creates a metadata store for the document at path. The file itself is
// created on first Load or Save.
func New(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("metadata path is required")
	}
	if filepath.Ext(path) != ".toml" {
		return nil, fmt.Errorf("%w: metadata path %s must have a .toml extension", models.ErrMisconfigured, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: abs}, nil
}

// Path returns the absolute path of the metadata document.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current mapping. A missing document is created empty.
// Structural problems (unparsable TOML, wrong field types, keys that are not
// hashes) are load errors; entry-level invariant violations such as empty
// tags are left for Verify to report.
func (s *Store) Load() (map[string]models.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := s.Save(map[string]models.Entry{}); err != nil {
			return nil, err
		}
		return map[string]models.Entry{}, nil
	}

	entries := make(map[string]models.Entry)
	if _, err := toml.Decode(string(data), &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	for hash, entry := range entries {
		if !models.IsValidHash(hash) {
			return nil, fmt.Errorf("parse %s: key %q is not a sha256 hash", s.path, hash)
		}
		entry.Hash = hash
		entries[hash] = entry
	}

	return entries, nil
}

// Save atomically rewrites the whole document. Last writer wins; there is
// no cross-process locking.
func (s *Store) Save(entries map[string]models.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".walls-*.toml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if err := toml.NewEncoder(tmp).Encode(entries); err != nil {
		cleanup()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		cleanup()
		return err
	}
	return nil
}
