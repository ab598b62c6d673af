package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newAddCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		tags    []string
		source  string
		noInput bool
	)

	cmd := &cobra.Command{
		Use:   "add [<path>...]",
		Short: "Add images to the collection",
		Long: "Add admits image files into the collection: each file is hashed, " +
			"copied into the store directory under its content hash and recorded " +
			"in the metadata file. Without paths, every file in the current " +
			"directory is considered. Already-known content is skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := collection.Options{
				Tags:      tags,
				Source:    source,
				SourceSet: cmd.Flags().Changed("source"),
			}

			var prompt collection.Prompter
			if !noInput {
				prompt = newTerminalPrompt()
			}

			return withCollection(cfg, prompt, func(col *collection.Collection) error {
				admitted, err := col.Add(args, opts)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(admitted)
				}
				return writeHashes(admitted)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "tags for every added image")
	cmd.Flags().StringVarP(&source, "source", "s", "", "source for every added image")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "skip interactive prompts")
	return cmd
}
