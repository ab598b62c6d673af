package metastore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shimeoki/wallpapers/internal/models"
)

func testHash(seed string) string {
	return strings.Repeat(seed, 64/len(seed))
}

func TestNewRequiresTOMLPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "index.json")); !errors.Is(err, models.ErrMisconfigured) {
		t.Fatalf("expected misconfigured error, got %v", err)
	}
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallpapers.toml")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty mapping, got %v", entries)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected document to be created: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "wallpapers.toml"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	want := map[string]models.Entry{
		testHash("a1"): {
			Hash:      testHash("a1"),
			Extension: "png",
			Tags:      []string{"sunset", "beach"},
			Source:    "https://example.com/a.png",
		},
		testHash("b2"): {
			Hash:      testHash("b2"),
			Extension: "jpg",
			Tags:      []string{"forest"},
		},
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", want, got)
	}

	// save(load()) must not change the document
	if err := store.Save(got); err != nil {
		t.Fatalf("save again: %v", err)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Fatalf("second round trip mismatch: %#v", again)
	}
}

func TestLoadAbsentSourceStaysAbsent(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "wallpapers.toml"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	hash := testHash("c3")
	if err := store.Save(map[string]models.Entry{
		hash: {Hash: hash, Extension: "jpeg", Tags: []string{"city"}},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "source") {
		t.Fatalf("absent source must not be serialized:\n%s", raw)
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallpapers.toml")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := os.WriteFile(path, []byte("[not-a-hash]\nextension = \"png\"\ntags = [\"x\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for non-hash key")
	}

	if err := os.WriteFile(path, []byte("["+testHash("d4")+"]\nextension = 7\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for wrong field type")
	}

	if err := os.WriteFile(path, []byte("not toml at all ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for unparsable document")
	}
}

func TestLoadKeepsInvalidEntriesForVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallpapers.toml")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// tampered entry: empty tags; load must surface it, not reject it
	hash := testHash("e5")
	doc := "[" + hash + "]\nextension = \"png\"\ntags = []\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	entry, ok := entries[hash]
	if !ok {
		t.Fatalf("expected tampered entry to load, got %v", entries)
	}
	if len(entry.Tags) != 0 {
		t.Fatalf("expected empty tags, got %v", entry.Tags)
	}
}
