package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli"
	"github.com/bnema/dumbterm/internal/cli/model"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

const defaultTabID = "default"

var (
	playTab     string
	playRestore bool
	playNoSave  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive layout playground",
	Long: `Open a full-screen workspace of demo panes.

Split, close, navigate and resize panes with the configured hotkeys, or
drag pane borders with the mouse. Press ? for the full key list.

The layout is saved on exit when session.auto_save is enabled, and
restored on start with --restore or session.auto_restore.

Examples:
  dumbterm play
  dumbterm play --restore
  dumbterm play --tab notes --no-save`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playTab, "tab", defaultTabID, "tab whose layout is saved and restored")
	playCmd.Flags().BoolVarP(&playRestore, "restore", "r", false, "restore the saved layout of the tab")
	playCmd.Flags().BoolVar(&playNoSave, "no-save", false, "do not save the layout on exit")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	restore := playRestore || app.Config.Session.AutoRestore
	return runPlayground(app, entity.TabID(playTab), restore, playRestore)
}

// runPlayground opens the playground for tabID. With restore, the saved
// layout is rebuilt first; a missing layout is an error only when strict.
func runPlayground(app *cli.App, tabID entity.TabID, restore, strict bool) error {
	ctx := logging.WithTab(logging.WithComponent(app.Ctx(), "playground"), string(tabID))
	log := logging.FromContext(ctx)
	renderer := styles.NewSessionsCLIRenderer(app.Theme)

	factory := app.NewFactory()

	var restored *usecase.RestoreLayoutOutput
	if restore {
		out, err := app.RestoreLayout(tabID, factory)
		switch {
		case err == nil:
			restored = out
			log.Info().Int("dropped", out.Dropped).Msg("layout restored")
		case errors.Is(err, usecase.ErrLayoutNotFound) && !strict:
			log.Debug().Msg("no saved layout, starting fresh")
		case errors.Is(err, usecase.ErrLayoutNotFound):
			fmt.Println(renderer.RenderNotFound(tabID))
			return nil
		case strict:
			return fmt.Errorf("restore layout: %w", err)
		default:
			log.Warn().Err(err).Msg("failed to restore layout, starting fresh")
		}
	}

	m, err := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		TabID:      tabID,
		Config:     app.Config,
		Factory:    factory,
		Restored:   restored,
		Save:       app.SaveLayout,
		SaveOnExit: app.Config.Session.AutoSave && !playNoSave,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if app.ConfigManager != nil {
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := app.ConfigManager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
