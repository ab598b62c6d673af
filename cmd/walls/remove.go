package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newRemoveCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <hash>|<path> [...]",
		Short: "Remove entries from the collection",
		Long: "Rm deletes entries addressed by hash or by path: the store file is " +
			"removed and the entry dropped from the metadata. Each removal is " +
			"confirmed interactively unless --force is given, and persists " +
			"immediately.",
		Args: requireAtLeastArgs(1, "hash or path is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompt collection.Prompter
			if !force {
				prompt = newTerminalPrompt()
			}

			return withCollection(cfg, prompt, func(col *collection.Collection) error {
				removed, err := col.Remove(args)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(removed)
				}
				return writeHashes(removed)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "remove without confirmation")
	return cmd
}
