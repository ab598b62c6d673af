package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
	"github.com/shimeoki/wallpapers/internal/format"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every entry with its store path",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := format.ForName(formatName)
			if err != nil {
				return err
			}
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				items, err := col.List()
				if err != nil {
					return err
				}
				return formatter.Write(os.Stdout, items)
			})
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "json", "output format: json|yaml")
	return cmd
}
