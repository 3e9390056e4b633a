package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli"
)

var (
	previewWidth  int
	previewHeight int
	previewCanvas bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [hotkey...]",
	Short: "Replay hotkeys and print the resulting layout",
	Long: `Start from a single pane, run each hotkey in order and print the
rectangle of every pane. Hotkeys use the names of the [keybindings]
table, e.g. split-right, pane-nav-left or resize-pane-up.

Examples:
  dumbterm preview split-right split-bottom
  dumbterm preview split-right resize-pane-left --canvas
  dumbterm preview split-right split-right pane-equalize --width 120`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "layout width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "height", 24, "layout height in cells")
	previewCmd.Flags().BoolVar(&previewCanvas, "canvas", false, "also draw the pane frames")
}

func runPreview(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	opts := cli.PreviewOptions{
		Steps:  args,
		Width:  previewWidth,
		Height: previewHeight,
		Canvas: previewCanvas,
	}
	res, err := cli.RunPreview(app.Ctx(), app.NewPreviewConfig(), opts)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	cli.RenderPreview(os.Stdout, app.Theme, res, opts)
	return nil
}
