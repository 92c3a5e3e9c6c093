// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cmdseq/cmdseq/internal/commands"
	"github.com/cmdseq/cmdseq/internal/config"
	"github.com/cmdseq/cmdseq/internal/envvar"
	"github.com/cmdseq/cmdseq/internal/issue"
	"github.com/cmdseq/cmdseq/internal/logging"
	"github.com/cmdseq/cmdseq/internal/registry"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/exp/maps"
)

type (
	// App is the composition root of the CLI. Cobra handlers receive it and
	// reach configuration, logging and the command registry through it.
	App struct {
		Config config.Provider

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		// Set by the root command's persistent flags.
		cfgFile string
		verbose bool

		// Filled by load before any subcommand runs.
		cfg     *config.Config
		cfgPath string
		logger  *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// load reads the configuration and derives the logger and color profile
// from it. The --verbose flag wins over ui.verbose.
func (a *App) load(ctx context.Context) error {
	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	a.logger = logging.New(a.stderr, cfg.Log.Level.String(), a.verbose)
	applyColorMode(cfg.UI.Color)

	a.logger.Debug("configuration loaded", "path", a.cfgPath)
	return nil
}

// buildRegistry registers the built-in commands plus configured aliases.
func (a *App) buildRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := commands.Register(reg); err != nil {
		return nil, fmt.Errorf("register built-in commands: %w", err)
	}
	for _, alias := range slices.Sorted(maps.Keys(a.cfg.Aliases)) {
		if err := reg.Alias(alias, a.cfg.Aliases[alias]); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("validate configuration").
				WithResource(a.cfgPath).
				WithSuggestion(fmt.Sprintf("Point alias %q at a command listed by 'cmdseq list'", alias)).
				WithSuggestion("Remove aliases that reuse a built-in name").
				Wrap(err).
				BuildError()
		}
	}
	return reg, nil
}

// buildEnv creates the environment resolver from the process environment
// and the configured dotenv files.
func (a *App) buildEnv() (*envvar.Resolver, error) {
	overlay, err := envvar.LoadFiles("", a.cfg.Dispatch.EnvFiles...)
	if err != nil {
		return nil, err
	}
	return envvar.New(
		envvar.WithOverlay(overlay),
		envvar.WithFallback(a.cfg.Dispatch.EnvFallback),
	), nil
}

// applyColorMode forces or disables styling; auto leaves lipgloss to detect
// the terminal.
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAuto:
	}
}
