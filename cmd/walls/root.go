package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shimeoki/wallpapers/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		jsonOutput bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "walls",
		Short: "Walls manages a content-addressed wallpaper collection",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			warning, err := configureLoggerForCLI(logLevel, cfg.LogLevel)
			if err != nil {
				return err
			}
			if warning != "" {
				fmt.Fprintln(os.Stderr, warning)
			}
			return nil
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(
		newAddCmd(cfg, &jsonOutput),
		newEditCmd(cfg, &jsonOutput),
		newRemoveCmd(cfg, &jsonOutput),
		newShowCmd(cfg, &jsonOutput),
		newListCmd(cfg, &jsonOutput),
		newTagCmd(cfg, &jsonOutput),
		newVerifyCmd(cfg, &jsonOutput),
		newCheckCmd(cfg),
		newRepairCmd(cfg, &jsonOutput),
		newPickCmd(cfg, &jsonOutput),
		newImportCmd(cfg, &jsonOutput),
		newExportCmd(cfg),
		newConfigCmd(cfg),
	)

	return cmd
}
