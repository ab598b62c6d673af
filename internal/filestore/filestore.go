// Package filestore manages the flat store directory holding image bytes,
// one file per entry named <hash>.<extension>.
package filestore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shimeoki/wallpapers/internal/models"
)

// Identity is the content-derived identity of a candidate file.
type Identity struct {
	Hash      string
	Extension models.Extension
}

// Filename returns the canonical store file name for this identity.
func (id Identity) Filename() string {
	return id.Hash + "." + string(id.Extension)
}

// Resolve computes the identity of the file at path. It never mutates
// anything: identical bytes yield the identical hash regardless of the
// file's name or location. Symlinks are followed and hashed as their target.
func Resolve(path string) (Identity, error) {
	var zero Identity

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, fmt.Errorf("%w: %s", models.ErrNotFound, path)
		}
		return zero, err
	}
	if !info.Mode().IsRegular() {
		return zero, fmt.Errorf("%w: %s", models.ErrNotAFile, path)
	}

	ext, err := models.ParseExtension(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return zero, fmt.Errorf("%w: %s", err, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return zero, err
	}

	return Identity{
		Hash:      hex.EncodeToString(h.Sum(nil)),
		Extension: ext,
	}, nil
}

// Store is the flat directory of content-named image files.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if absent.
func New(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("store dir is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: abs}, nil
}

// Dir returns the absolute store directory path.
func (s *Store) Dir() string {
	return s.dir
}

// PathFor returns the expected path of an entry's file.
func (s *Store) PathFor(hash string, ext models.Extension) string {
	return filepath.Join(s.dir, hash+"."+string(ext))
}

// Add copies the file at src into the store under its canonical name. The
// copy never clobbers: an existing destination is kept as is, which is safe
// because the name is derived from the content.
func (s *Store) Add(src string, id Identity) error {
	dst := filepath.Join(s.dir, id.Filename())
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(s.dir, ".add-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := io.Copy(tmp, in); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		_ = os.Remove(tmpPath)
		return nil
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		cleanup()
		return err
	}
	return nil
}

// Remove deletes an entry's file. Missing files are ignored.
func (s *Store) Remove(hash string, ext models.Extension) error {
	if err := os.Remove(s.PathFor(hash, ext)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Files lists the image files physically present in the store directory.
// Non-image files (the metadata document, temp files) are skipped.
func (s *Store) Files() ([]string, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, dirent := range dirents {
		if dirent.IsDir() {
			continue
		}
		name := dirent.Name()
		if _, err := models.ParseExtension(strings.TrimPrefix(filepath.Ext(name), ".")); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Rename moves a store file to the canonical name for id, refusing to
// clobber an existing correctly-named file. Reports whether a move happened.
func (s *Store) Rename(name string, id Identity) (bool, error) {
	want := id.Filename()
	if name == want {
		return false, nil
	}

	dst := filepath.Join(s.dir, want)
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := os.Rename(filepath.Join(s.dir, name), dst); err != nil {
		return false, err
	}
	return true, nil
}
