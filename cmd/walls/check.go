package main

import (
	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/config"
)

func checksFlags(cmd *cobra.Command, checks *collection.Checks) {
	cmd.Flags().BoolVar(&checks.Source, "source", false, "require a non-empty source on every entry")
	cmd.Flags().BoolVar(&checks.Hash, "hash", false, "recompute file hashes and compare to filenames")
}

func newVerifyCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var checks collection.Checks

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report entries violating collection invariants",
		Long: "Verify checks every entry for well-formed tags and a present store " +
			"file, plus any opted-in checks, and prints offending hashes. The " +
			"findings are output, not an error; see check for the strict variant.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				invalid, err := col.Verify(checks)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(invalid)
				}
				return writeHashes(invalid)
			})
		},
	}
	checksFlags(cmd, &checks)
	return cmd
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var checks collection.Checks

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when any entry violates collection invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				return col.Check(checks)
			})
		},
	}
	checksFlags(cmd, &checks)
	return cmd
}

func newRepairCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Rename misnamed store files back to their content hash",
		Long: "Repair rehashes every file in the store directory and renames " +
			"files of known entries to <hash>.<extension>. Files matching no " +
			"entry are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollection(cfg, nil, func(col *collection.Collection) error {
				renames, err := col.Repair()
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(renames)
				}
				for _, rename := range renames {
					if err := writePlain("%s -> %s\n", rename.From, rename.To); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
