// Package cmd wires the wring subcommands together with cobra.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/wring/internal/cli"
	"github.com/bnema/wring/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
)

var rootCmd = &cobra.Command{
	Use:   "wring",
	Short: "Window ring engine for stack-based tiling",
	Long: `Wring - the ordering and focus engine of a stack-based tiling
window manager, runnable on its own.

Windows live in per-workspace rings: cycling walks the stack with
wraparound, dragging carries the focused window through the stack, and
rotation shifts every window at once. The workspaces themselves form a
ring too. Desktop state snapshots persist to SQLite so a session can be
saved, inspected and restored later.

Use 'wring demo' for an interactive playground, 'wring simulate' to run
scripted scenarios from YAML files, or 'wring snapshots' to manage
saved state.`,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(*cobra.Command, []string) {
		if app != nil {
			_ = app.Close()
		}
	},
}

// initApp builds the shared App for every subcommand that needs one.
// Help-like commands run without it.
func initApp(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "completion":
		return nil
	}

	var err error
	app, err = cli.NewApp()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	app.BuildInfo = buildInfo
	return nil
}

// requireApp returns the shared App, failing for commands that run
// before initApp built one.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errors.New("application not initialized")
	}
	return app, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo hands over the ldflags values before Execute runs.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
