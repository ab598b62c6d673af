package models

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseExtension(t *testing.T) {
	got, err := ParseExtension(" PNG ")
	if err != nil {
		t.Fatalf("parse extension: %v", err)
	}
	if got != ExtensionPNG {
		t.Fatalf("expected %q, got %q", ExtensionPNG, got)
	}

	if _, err := ParseExtension("gif"); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("expected unsupported extension error, got %v", err)
	}
	if _, err := ParseExtension(""); err == nil {
		t.Fatal("expected error for empty extension")
	}
}

func TestIsValidHash(t *testing.T) {
	valid := strings.Repeat("ab12", 16)
	if !IsValidHash(valid) {
		t.Fatalf("expected %q to be valid", valid)
	}
	if IsValidHash(strings.Repeat("AB12", 16)) {
		t.Fatal("uppercase hex must be invalid")
	}
	if IsValidHash("abc") {
		t.Fatal("short string must be invalid")
	}
	if IsValidHash(strings.Repeat("zz12", 16)) {
		t.Fatal("non-hex characters must be invalid")
	}
}

func TestValidateTag(t *testing.T) {
	if err := ValidateTag("sunset"); err != nil {
		t.Fatalf("validate tag: %v", err)
	}
	if err := ValidateTag(""); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected invalid tag error, got %v", err)
	}
	if err := ValidateTag("two words"); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected invalid tag error, got %v", err)
	}
	if err := ValidateTag("tab\tbed"); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected invalid tag error, got %v", err)
	}
}

func TestDedupeTags(t *testing.T) {
	got := DedupeTags([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := DedupeTags(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestEntryValidate(t *testing.T) {
	entry := Entry{
		Hash:      strings.Repeat("ab12", 16),
		Extension: "png",
		Tags:      []string{"sunset", "beach"},
	}
	if err := entry.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	broken := entry
	broken.Tags = nil
	if err := broken.Validate(); !errors.Is(err, ErrEmptyTags) {
		t.Fatalf("expected empty tags error, got %v", err)
	}

	broken = entry
	broken.Extension = "bmp"
	if err := broken.Validate(); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("expected unsupported extension error, got %v", err)
	}

	broken = entry
	broken.Hash = "nope"
	if err := broken.Validate(); err == nil {
		t.Fatal("expected invalid hash error")
	}
}
