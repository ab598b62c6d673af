package main

import (
	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
	"github.com/shimeoki/wallpapers/internal/filestore"
	"github.com/shimeoki/wallpapers/internal/metastore"
	"github.com/shimeoki/wallpapers/internal/vcs"
)

// newCollection wires the collection from resolved configuration. prompt
// may be nil for non-interactive operations.
func newCollection(cfg *config.Config, prompt collection.Prompter) (*collection.Collection, error) {
	meta, err := metastore.New(cfg.MetadataPath)
	if err != nil {
		return nil, err
	}
	files, err := filestore.New(cfg.StoreDir)
	if err != nil {
		return nil, err
	}

	var committer collection.Committer
	if cfg.Git {
		committer = vcs.New(cfg.StoreDir)
	}
	return collection.New(meta, files, prompt, committer), nil
}

func withCollection(cfg *config.Config, prompt collection.Prompter, fn func(col *collection.Collection) error) error {
	col, err := newCollection(cfg, prompt)
	if err != nil {
		return err
	}
	return fn(col)
}
