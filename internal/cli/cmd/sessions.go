package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli/model"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
)

const defaultSessionsLimit = 20

var (
	sessionsJSON  bool
	sessionsLimit int
	sessionsYes   bool
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"layouts"},
	Short:   "Manage saved layouts",
	Long: `View, open and delete saved layouts.

A layout is saved per tab when the playground exits with session.auto_save
enabled, or when ctrl+s is pressed in the playground.

Run without arguments to open the interactive layout browser.`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewSessionsModel(app.Ctx(), app.Theme, app.Layouts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if sm, ok := final.(model.SessionsModel); ok && sm.Selected() != "" {
		return runPlayground(app, sm.Selected(), true, true)
	}
	return nil
}

// sessions list
var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Long:  `List saved layouts with their pane counts, newest first.`,
	RunE:  runSessionsList,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", defaultSessionsLimit, "maximum layouts to show")
}

func runSessionsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}
	if sessionsLimit > 0 && len(layouts) > sessionsLimit {
		layouts = layouts[:sessionsLimit]
	}

	if sessionsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(layouts)
	}

	styles.NewSessionsCLIRenderer(app.Theme).RenderList(os.Stdout, layouts, sessionsLimit)
	return nil
}

// sessions show <tab>
var sessionsShowCmd = &cobra.Command{
	Use:   "show <tab>",
	Short: "Print the split tree of a saved layout",
	Long: `Print the containers and panes of a saved layout as a tree.

Example:
  dumbterm sessions show default
  dumbterm sessions show default --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsShow,
}

func init() {
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output the raw snapshot as JSON")
}

func runSessionsShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	tabID := entity.TabID(args[0])

	snap, err := app.Layouts.Get(app.Ctx(), tabID)
	if err != nil {
		return fmt.Errorf("get layout: %w", err)
	}
	if snap == nil {
		fmt.Println(renderer.RenderNotFound(tabID))
		return nil
	}

	if sessionsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Println(renderer.RenderTree(snap))
	return nil
}

// sessions restore <tab>
var sessionsRestoreCmd = &cobra.Command{
	Use:   "restore <tab>",
	Short: "Open the playground with a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		tabID := entity.TabID(args[0])
		fmt.Println(styles.NewSessionsCLIRenderer(app.Theme).RenderRestoreStarted(tabID))
		return runPlayground(app, tabID, true, true)
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsRestoreCmd)
}

// sessions delete <tab>
var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <tab>",
	Short: "Delete a saved layout",
	Long: `Permanently remove the saved layout of a tab.

Example:
  dumbterm sessions delete default
  dumbterm sessions delete default --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsDelete,
}

func init() {
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsDeleteCmd.Flags().BoolVarP(&sessionsYes, "yes", "y", false, "skip confirmation prompt")
}

func runSessionsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	tabID := entity.TabID(args[0])

	snap, err := app.Layouts.Get(app.Ctx(), tabID)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if snap == nil {
		fmt.Println(renderer.RenderNotFound(tabID))
		return nil
	}

	if !sessionsYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("Delete layout %s (%d panes)?", tabID, snap.CountPanes()))
		if err != nil || !ok {
			return err
		}
	}

	if err := app.Layouts.Delete(app.Ctx(), tabID); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderDeleted(tabID))
	return nil
}

// confirmModel runs a styles.ConfirmModel as a standalone program.
type confirmModel struct {
	confirm styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		m.confirm.Canceled = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{confirm: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, err
	}
	return final.(confirmModel).confirm.Result(), nil
}
