// Package collection implements the admission, verification and selection
// workflows over the metadata store and the store directory. Operations
// reload the metadata document fresh and persist per item, so interrupting
// a batch leaves every processed item durable.
package collection

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shimeoki/wallpapers/internal/filestore"
	"github.com/shimeoki/wallpapers/internal/metastore"
	"github.com/shimeoki/wallpapers/internal/models"
)

// Prompter supplies user input during admission. Implementations either
// talk to a terminal or return defaults for non-interactive runs.
type Prompter interface {
	Tags(entry models.Entry) ([]string, error)
	Source(entry models.Entry) (string, bool, error)
	Confirm(entry models.Entry) (bool, error)
}

// NoPrompt is the non-interactive Prompter: no extra tags, no source,
// every confirmation accepted.
type NoPrompt struct{}

func (NoPrompt) Tags(models.Entry) ([]string, error)       { return nil, nil }
func (NoPrompt) Source(models.Entry) (string, bool, error) { return "", false, nil }
func (NoPrompt) Confirm(models.Entry) (bool, error)        { return true, nil }

// Committer records a durable mutation in version control. It runs after
// the mutation has been persisted and must swallow its own failures.
type Committer interface {
	Commit(op, hash string, paths ...string)
}

type nopCommitter struct{}

func (nopCommitter) Commit(string, string, ...string) {}

// Collection wires the metadata store and the store directory together.
type Collection struct {
	meta   *metastore.Store
	files  *filestore.Store
	prompt Prompter
	vcs    Committer
}

// New creates a collection. prompt and vcs may be nil, which selects the
// non-interactive prompter and no version control.
func New(meta *metastore.Store, files *filestore.Store, prompt Prompter, vcs Committer) *Collection {
	if prompt == nil {
		prompt = NoPrompt{}
	}
	if vcs == nil {
		vcs = nopCommitter{}
	}
	return &Collection{meta: meta, files: files, prompt: prompt, vcs: vcs}
}

// Options carries fixed tag/source arguments for Add and Edit. SourceSet
// distinguishes an explicitly passed empty source from an omitted one.
type Options struct {
	Tags      []string
	Source    string
	SourceSet bool
}

func (o Options) validate() error {
	for _, tag := range o.Tags {
		if err := models.ValidateTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// Add admits the files at paths into the collection and returns the hashes
// actually admitted. With no paths it considers every entry of the current
// working directory. Unresolvable paths, already-known content and items
// left without tags are dropped, not errors.
func (c *Collection) Add(paths []string, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		var err error
		paths, err = workingDirPaths()
		if err != nil {
			return nil, err
		}
	}

	var admitted []string
	for _, path := range paths {
		id, err := filestore.Resolve(path)
		if err != nil {
			slog.Debug("skipping path", "path", path, "error", err)
			continue
		}

		// reload per item: the store may have changed mid-batch
		entries, err := c.meta.Load()
		if err != nil {
			return admitted, err
		}
		if _, ok := entries[id.Hash]; ok {
			slog.Debug("skipping duplicate", "path", path, "hash", id.Hash)
			continue
		}

		entry := models.Entry{
			Hash:      id.Hash,
			Extension: string(id.Extension),
		}
		entry, err = c.enrich(entry, opts)
		if err != nil {
			return admitted, err
		}
		if len(entry.Tags) == 0 {
			slog.Debug("skipping untagged", "path", path, "hash", id.Hash)
			continue
		}

		if err := c.files.Add(path, id); err != nil {
			return admitted, err
		}
		entries[id.Hash] = entry
		if err := c.meta.Save(entries); err != nil {
			return admitted, err
		}
		c.vcs.Commit("add", id.Hash, c.meta.Path(), c.files.PathFor(id.Hash, id.Extension))

		admitted = append(admitted, id.Hash)
	}
	return admitted, nil
}

// Edit updates existing entries addressed by hash or path and returns the
// hashes actually edited. Fixed tags are appended to interactive tags and
// deduplicated; a fixed source replaces the stored one outright, while an
// omitted source leaves it untouched.
func (c *Collection) Edit(refs []string, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if len(refs) == 0 {
		var err error
		refs, err = workingDirPaths()
		if err != nil {
			return nil, err
		}
	}

	var edited []string
	for _, ref := range refs {
		entries, err := c.meta.Load()
		if err != nil {
			return edited, err
		}
		hash, ok := resolveRef(entries, ref)
		if !ok {
			slog.Debug("skipping unresolved", "ref", ref)
			continue
		}

		entry := entries[hash]
		entry, err = c.enrich(entry, opts)
		if err != nil {
			return edited, err
		}

		entries[hash] = entry
		if err := c.meta.Save(entries); err != nil {
			return edited, err
		}
		c.vcs.Commit("edit", hash, c.meta.Path())

		edited = append(edited, hash)
	}
	return edited, nil
}

// Remove deletes entries addressed by hash or path, prompting for
// confirmation per item, and returns the hashes actually removed. The
// backing file removal is best-effort; each removal persists immediately.
func (c *Collection) Remove(refs []string) ([]string, error) {
	var removed []string
	for _, ref := range refs {
		entries, err := c.meta.Load()
		if err != nil {
			return removed, err
		}
		hash, ok := resolveRef(entries, ref)
		if !ok {
			slog.Debug("skipping unresolved", "ref", ref)
			continue
		}
		entry := entries[hash]

		confirmed, err := c.prompt.Confirm(entry)
		if err != nil {
			return removed, err
		}
		if !confirmed {
			continue
		}

		commitPaths := []string{c.meta.Path()}
		if ext, err := models.ParseExtension(entry.Extension); err == nil {
			if err := c.files.Remove(hash, ext); err != nil {
				return removed, err
			}
			// staging the deleted path records the removal in git
			commitPaths = append(commitPaths, c.files.PathFor(hash, ext))
		}
		delete(entries, hash)
		if err := c.meta.Save(entries); err != nil {
			return removed, err
		}
		c.vcs.Commit("remove", hash, commitPaths...)

		removed = append(removed, hash)
	}
	return removed, nil
}

// Get returns one entry addressed by hash or path.
func (c *Collection) Get(ref string) (models.Entry, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return models.Entry{}, err
	}
	hash, ok := resolveRef(entries, ref)
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: %s", models.ErrNotListed, ref)
	}
	return entries[hash], nil
}

// Item is one entry together with its expected store path.
type Item struct {
	models.Entry
	Path string `json:"path" yaml:"path"`
}

// List returns every entry with its expected store path, in hash order.
func (c *Collection) List() ([]Item, error) {
	entries, err := c.meta.Load()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, hash := range models.SortedHashes(entries) {
		entry := entries[hash]
		items = append(items, Item{
			Entry: entry,
			Path:  c.files.PathFor(hash, models.Extension(entry.Extension)),
		})
	}
	return items, nil
}

// enrich merges prompter-supplied and fixed tags/source into entry.
func (c *Collection) enrich(entry models.Entry, opts Options) (models.Entry, error) {
	extra, err := c.prompt.Tags(entry)
	if err != nil {
		return entry, err
	}
	for _, tag := range extra {
		if err := models.ValidateTag(tag); err != nil {
			return entry, err
		}
	}
	entry.Tags = models.DedupeTags(append(append(entry.Tags, extra...), opts.Tags...))

	if opts.SourceSet {
		entry.Source = opts.Source
	} else {
		source, ok, err := c.prompt.Source(entry)
		if err != nil {
			return entry, err
		}
		if ok {
			entry.Source = source
		}
	}
	return entry, nil
}

// resolveRef maps a hash-or-path reference onto a known hash.
func resolveRef(entries map[string]models.Entry, ref string) (string, bool) {
	if models.IsValidHash(ref) {
		if _, ok := entries[ref]; ok {
			return ref, true
		}
	}
	id, err := filestore.Resolve(ref)
	if err != nil {
		return "", false
	}
	if _, ok := entries[id.Hash]; !ok {
		return "", false
	}
	return id.Hash, true
}

func workingDirPaths() ([]string, error) {
	dirents, err := os.ReadDir(".")
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(dirents))
	for _, dirent := range dirents {
		paths = append(paths, dirent.Name())
	}
	return paths, nil
}
