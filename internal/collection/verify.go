package collection

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shimeoki/wallpapers/internal/filestore"
	"github.com/shimeoki/wallpapers/internal/models"
)

// Checks selects the optional verification passes. Tag validity and store
// file presence are always checked.
type Checks struct {
	// Source requires a non-empty source on every entry.
	Source bool
	// Hash recomputes each store file's digest and compares it to the
	// filename stem. Skipped for files that are missing.
	Hash bool
}

// Verify reports the hashes of entries failing at least one check. The
// collection is consistent iff the result is empty. Findings are data, not
// errors.
func (c *Collection) Verify(checks Checks) ([]string, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}

	var invalid []string
	for _, hash := range models.SortedHashes(entries) {
		entry := entries[hash]
		if c.verifyEntry(hash, entry, checks) {
			invalid = append(invalid, hash)
		}
	}
	return invalid, nil
}

func (c *Collection) verifyEntry(hash string, entry models.Entry, checks Checks) bool {
	if !models.ValidTags(entry.Tags) {
		return true
	}
	if checks.Source && entry.Source == "" {
		return true
	}

	ext, err := models.ParseExtension(entry.Extension)
	if err != nil {
		return true
	}
	path := c.files.PathFor(hash, ext)
	if _, err := os.Stat(path); err != nil {
		return true
	}

	if checks.Hash {
		id, err := filestore.Resolve(path)
		if err != nil || id.Hash != hash {
			return true
		}
	}
	return false
}

// Check is the strict variant of Verify: it fails when any entry is invalid.
func (c *Collection) Check(checks Checks) error {
	invalid, err := c.Verify(checks)
	if err != nil {
		return err
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%d invalid entries: %s", len(invalid), strings.Join(invalid, ", "))
	}
	return nil
}

// Renamed records one repair move inside the store directory.
type Renamed struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Repair recomputes the hash of every file in the store directory and moves
// misnamed files of known entries to their canonical <hash>.<extension>
// name. Files whose hash matches no entry are left untouched; deleting them
// stays an explicit operator action. The metadata document is not modified.
func (c *Collection) Repair() ([]Renamed, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}
	names, err := c.files.Files()
	if err != nil {
		return nil, err
	}

	var renames []Renamed
	for _, name := range names {
		id, err := filestore.Resolve(filepath.Join(c.files.Dir(), name))
		if err != nil {
			slog.Debug("skipping unreadable file", "name", name, "error", err)
			continue
		}
		entry, ok := entries[id.Hash]
		if !ok {
			continue
		}

		ext, err := models.ParseExtension(entry.Extension)
		if err != nil {
			continue
		}
		canonical := filestore.Identity{Hash: id.Hash, Extension: ext}
		moved, err := c.files.Rename(name, canonical)
		if err != nil {
			return renames, err
		}
		if moved {
			renames = append(renames, Renamed{From: name, To: canonical.Filename()})
		}
	}
	return renames, nil
}
