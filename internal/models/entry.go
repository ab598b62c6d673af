package models

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Extension defines allowed image file extensions.
type Extension string

const (
	ExtensionPNG  Extension = "png"
	ExtensionJPG  Extension = "jpg"
	ExtensionJPEG Extension = "jpeg"
)

const HashLength = 64

var validExtensions = map[Extension]struct{}{
	ExtensionPNG:  {},
	ExtensionJPG:  {},
	ExtensionJPEG: {},
}

// Entry is one managed image: content identity plus annotation. Hash is the
// lowercase hex SHA-256 digest of the file bytes and doubles as the map key
// in the persisted document, so it is not serialized as a field.
type Entry struct {
	Hash      string   `toml:"-" json:"hash" yaml:"hash"`
	Extension string   `toml:"extension" json:"extension" yaml:"extension"`
	Tags      []string `toml:"tags" json:"tags" yaml:"tags"`
	Source    string   `toml:"source,omitempty" json:"source,omitempty" yaml:"source,omitempty"`
}

func IsValidExtension(ext Extension) bool {
	_, ok := validExtensions[ext]
	return ok
}

// ParseExtension normalizes and validates a file extension without the dot.
func ParseExtension(raw string) (Extension, error) {
	value := Extension(strings.ToLower(strings.TrimSpace(raw)))
	if !IsValidExtension(value) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, raw)
	}
	return value, nil
}

// IsValidHash reports whether s looks like a lowercase hex SHA-256 digest.
func IsValidHash(s string) bool {
	if len(s) != HashLength {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// ValidateTag rejects empty and whitespace-containing tag names.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTag)
	}
	if strings.ContainsFunc(tag, unicode.IsSpace) {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidTag, tag)
	}
	return nil
}

// DedupeTags removes duplicates while keeping first-seen order.
func DedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ValidTags reports whether tags is non-empty and every tag is well-formed.
func ValidTags(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	for _, tag := range tags {
		if ValidateTag(tag) != nil {
			return false
		}
	}
	return true
}

// Validate checks the full Entry invariant enforced at admission time.
func (e Entry) Validate() error {
	if !IsValidHash(e.Hash) {
		return fmt.Errorf("invalid hash: %q", e.Hash)
	}
	if _, err := ParseExtension(e.Extension); err != nil {
		return err
	}
	if len(e.Tags) == 0 {
		return ErrEmptyTags
	}
	for _, tag := range e.Tags {
		if err := ValidateTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// SortedHashes returns the keys of a hash-keyed map in stable order.
func SortedHashes[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for hash := range m {
		out = append(out, hash)
	}
	sort.Strings(out)
	return out
}
