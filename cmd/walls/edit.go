package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newEditCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		tags    []string
		source  string
		noInput bool
	)

	cmd := &cobra.Command{
		Use:   "edit [<hash>|<path>...]",
		Short: "Edit tags and sources of existing entries",
		Long: "Edit updates existing entries addressed by hash or by path. Tags " +
			"given on the command line are appended; --source replaces the stored " +
			"source outright, while an omitted --source leaves it untouched.",
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
				edited, err := col.Edit(args, opts)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(edited)
				}
				return writeHashes(edited)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "tags to append")
	cmd.Flags().StringVarP(&source, "source", "s", "", "replacement source")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "skip interactive prompts")
	return cmd
}
