package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/wring/internal/cli/model"
	"github.com/bnema/wring/internal/infrastructure/config"
	"github.com/bnema/wring/internal/logging"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive desktop playground",
	Long: `Drive the window stacks interactively in the terminal.

The playground renders a fake desktop: a workspace bar, the focused
workspace's client stack, and a status line. Keys mirror what a window
manager would bind:

  j/k  cycle focus              J/K  drag the focused window
  r/R  rotate the stack         h/l  cycle workspaces
  1-9  focus workspace          n    map a synthetic window
  x    close focused            m    move focused to next workspace
  u    toggle urgent            /    fuzzy focus by class or title
  s    save a snapshot          q    quit

Colors reload live when the config file changes. State is autosaved on
the configured interval and restored on the next run when
session.auto_restore is set.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	m := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		Desktop:         app.Desktop,
		ClientsUC:       app.ClientsUC,
		WorkspacesUC:    app.WorkspacesUC,
		SearchUC:        app.SearchUC,
		SnapshotUC:      app.SnapshotUC,
		FloatingClasses: app.Config.FloatingClasses,
		MaxSnapshots:    app.Config.Session.MaxSnapshots,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if app.ConfigMgr != nil {
		app.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		if err := app.ConfigMgr.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watcher unavailable")
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	// The desktop is only safe to touch from the update loop, so the
	// ticker sends a message instead of saving here.
	if interval := app.Config.Session.AutosaveIntervalMs; app.SnapshotUC != nil && interval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(time.Duration(interval) * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					p.Send(model.AutosaveTickMsg{})
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Final autosave so auto_restore picks up where the session ended.
	if app.SnapshotUC != nil && app.Config.Session.AutosaveIntervalMs > 0 {
		if _, err := app.SnapshotUC.Save(app.Ctx(), model.AutosaveLabel); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("final autosave failed")
		}
	}

	return nil
}
