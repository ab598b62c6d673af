package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries as \"<path> <tag> <tag> ...\" lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				items, err := col.List()
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(items)
				}
				for _, item := range items {
					if err := writePlain("%s\n", itemLine(item)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
