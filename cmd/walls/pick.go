package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
	"github.com/shimeoki/wallpapers/internal/picker"
)

func newPickCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Select entry paths by tags or with the fuzzy picker",
	}

	pickCmd.AddCommand(
		newPickFilterCmd(cfg, jsonOutput, "any", "entries carrying at least one of the tags", (*collection.Collection).FilterAny),
		newPickFilterCmd(cfg, jsonOutput, "all", "entries carrying every one of the tags", (*collection.Collection).FilterAll),
		newPickFuzzyCmd(cfg, jsonOutput),
	)
	return pickCmd
}

func newPickFilterCmd(
	cfg *config.Config,
	jsonOutput *bool,
	name, doc string,
	filter func(*collection.Collection, []string) ([]string, error),
) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   name + " -t <tag>[,<tag>...]",
		Short: "Print store paths of " + doc,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tags) == 0 {
				return errors.New("at least one tag is required")
			}
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				hashes, err := filter(col, tags)
				if err != nil {
					return err
				}
				paths, err := col.Paths(hashes)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(paths)
				}
				return writePaths(paths)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "tags to match")
	return cmd
}

func newPickFuzzyCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "fuzzy",
		Short: "Choose entries with the configured fuzzy picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := picker.New(cfg.Picker)
			if err != nil {
				return err
			}
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				items, err := col.List()
				if err != nil {
					return err
				}
				lines := make([]string, 0, len(items))
				for _, item := range items {
					lines = append(lines, itemLine(item))
				}

				chosen, err := tool.Pick(lines)
				if err != nil {
					return err
				}
				paths := make([]string, 0, len(chosen))
				for _, line := range chosen {
					if path := picker.PathField(line); path != "" {
						paths = append(paths, path)
					}
				}
				if *jsonOutput {
					return writeJSON(paths)
				}
				return writePaths(paths)
			})
		},
	}
}
