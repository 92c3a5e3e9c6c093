// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/cmdseq/cmdseq/internal/config"

	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that must work even when the
// configuration file is broken.
const skipConfigAnnotation = "cmdseq/skip-config"

// newConfigCommand creates the `cmdseq config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cmdseq configuration",
		Long: `Manage cmdseq configuration.

Configuration is read from config.cue in:
  - Linux: $XDG_CONFIG_HOME/cmdseq (default ~/.config/cmdseq)
  - macOS: ~/Library/Application Support/cmdseq
  - Windows: %APPDATA%\cmdseq
and then from the current directory. CMDSEQ_* environment variables
override file values (CMDSEQ_DISPATCH_USAGE_EXIT_CODE=2).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfgPath != "" {
				fmt.Fprintf(app.stdout, "// loaded from %s\n", app.cfgPath)
			} else {
				fmt.Fprintln(app.stdout, "// no config file found, using defaults")
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configFilePath()
			if err != nil {
				return err
			}
			created, err := config.CreateDefaultConfig(path)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Print the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

// configFilePath is the --config path when given, otherwise the default
// location in the config directory.
func (a *App) configFilePath() (string, error) {
	if a.cfgFile != "" {
		return a.cfgFile, nil
	}
	return config.DefaultPath()
}
