package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

// importRecord is one manifest row: a file plus its annotation.
type importRecord struct {
	Path   string   `yaml:"path"`
	Tags   []string `yaml:"tags"`
	Source string   `yaml:"source"`
}

func newImportCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "import <manifest.yaml>",
		Short: "Batch-add images from a YAML manifest",
		Long: "Import reads a YAML list of {path, tags, source} records and admits " +
			"each file non-interactively. Records failing admission (missing file, " +
			"known content, no tags) are skipped like any other batch item.",
		Args: requireExactlyArgs(1, "manifest path is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var records []importRecord
			if err := yaml.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if len(records) == 0 {
				return errors.New("no records found in manifest")
			}

			return withCollection(cfg, nil, func(col *collection.Collection) error {
				var admitted []string
				for _, record := range records {
					if record.Path == "" {
						continue
					}
					hashes, err := col.Add([]string{record.Path}, collection.Options{
						Tags:      record.Tags,
						Source:    record.Source,
						SourceSet: record.Source != "",
					})
					if err != nil {
						return err
					}
					admitted = append(admitted, hashes...)
				}
				if *jsonOutput {
					return writeJSON(admitted)
				}
				return writeHashes(admitted)
			})
		},
	}
}
