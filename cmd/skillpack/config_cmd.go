// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillpack-cli/internal/config"
)

var (
	// configCmd groups configuration subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect skillpack configuration",
	}

	// configShowCmd prints the resolved configuration.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show the resolved configuration: built-in defaults overlaid with the
config file, when one exists.`,
		RunE: runConfigShow,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()

	cfgDir, err := config.ConfigDir()
	if err == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		fmt.Fprintf(stdout, "%s Config file: %s\n", SubtitleStyle.Render("•"), PathStyle.Render(cfgPath))
	}

	fmt.Fprintln(stdout, TitleStyle.Render("Configuration"))
	fmt.Fprintf(stdout, "  ui.verbose:      %t\n", cfg.UI.Verbose)
	fmt.Fprintf(stdout, "  ui.color_scheme: %s\n", cfg.UI.ColorScheme)

	return nil
}
