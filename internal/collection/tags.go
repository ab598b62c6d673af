package collection

import (
	"sort"

	"github.com/shimeoki/wallpapers/internal/models"
)

// Predicate decides whether an entry's tag set matches a selection.
type Predicate func(tags []string) bool

// Any matches entries carrying at least one of the given tags.
func Any(tags []string) Predicate {
	return func(entryTags []string) bool {
		for _, want := range tags {
			for _, have := range entryTags {
				if want == have {
					return true
				}
			}
		}
		return false
	}
}

// All matches entries carrying every one of the given tags.
func All(tags []string) Predicate {
	return func(entryTags []string) bool {
		for _, want := range tags {
			found := false
			for _, have := range entryTags {
				if want == have {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
}

// Tags returns the distinct tags present anywhere in the collection, sorted.
func (c *Collection) Tags() ([]string, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var tags []string
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// RenameTag replaces every occurrence of from with to across the collection
// and deduplicates each entry's tags, so renaming into an existing tag
// merges without duplication. The whole mapping is persisted in one write.
func (c *Collection) RenameTag(from, to string) error {
	if err := models.ValidateTag(from); err != nil {
		return err
	}
	if err := models.ValidateTag(to); err != nil {
		return err
	}

	entries, err := c.meta.Load()
	if err != nil {
		return err
	}

	changed := false
	for hash, entry := range entries {
		replaced := false
		tags := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			if tag == from {
				tags = append(tags, to)
				replaced = true
				continue
			}
			tags = append(tags, tag)
		}
		if !replaced {
			continue
		}
		entry.Tags = models.DedupeTags(tags)
		entries[hash] = entry
		changed = true
	}

	if !changed {
		return nil
	}
	if err := c.meta.Save(entries); err != nil {
		return err
	}
	c.vcs.Commit("tag rename", from+" "+to, c.meta.Path())
	return nil
}

// Filter returns the hashes of entries whose tag set satisfies pred, in
// stable order.
func (c *Collection) Filter(pred Predicate) ([]string, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}

	var hashes []string
	for _, hash := range models.SortedHashes(entries) {
		if pred(entries[hash].Tags) {
			hashes = append(hashes, hash)
		}
	}
	return hashes, nil
}

// FilterAny returns the hashes of entries carrying any of the given tags.
func (c *Collection) FilterAny(tags []string) ([]string, error) {
	return c.Filter(Any(tags))
}

// FilterAll returns the hashes of entries carrying all of the given tags.
func (c *Collection) FilterAll(tags []string) ([]string, error) {
	return c.Filter(All(tags))
}

// Paths maps hashes to their expected store paths, silently dropping
// hashes with no corresponding entry.
func (c *Collection) Paths(hashes []string) ([]string, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		entry, ok := entries[hash]
		if !ok {
			continue
		}
		paths = append(paths, c.files.PathFor(hash, models.Extension(entry.Extension)))
	}
	return paths, nil
}
