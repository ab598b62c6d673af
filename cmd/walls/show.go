package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newShowCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <hash>|<path>",
		Short: "Show one entry",
		Args:  requireExactlyArgs(1, "hash or path is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				entry, err := col.Get(args[0])
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(entry)
				}
				return writeEntryDetail(entry)
			})
		},
	}
}
