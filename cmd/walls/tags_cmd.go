package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func newTagCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every tag in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				tags, err := col.Tags()
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(tags)
				}
				return writePlain("%s\n", strings.Join(tags, "\n"))
			})
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a tag across the collection",
		Long: "Rename replaces every occurrence of a tag. Renaming into an " +
			"existing tag merges the two without duplication.",
		Args: requireExactlyArgs(2, "old and new tag names are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				return col.RenameTag(args[0], args[1])
			})
		},
	}

	tagCmd.AddCommand(listCmd, renameCmd)
	return tagCmd
}
