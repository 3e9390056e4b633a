package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/ui/input"
)

var (
	configSchemaOutput string
	configInitForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and layouts are stored, and inspect the active keybindings.`,
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml. Editors with TOML schema
support can use it for completion and validation.`,
	RunE: runConfigSchema,
}

var configKeybindingsCmd = &cobra.Command{
	Use:   "keybindings",
	Short: "List the configured hotkeys",
	RunE:  runConfigKeybindings,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeybindingsCmd)
	configCmd.AddCommand(configInitCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to a file")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
}

// runConfigStatus shows the config file and database paths.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	path := configPath()
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(path))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(path, app.StorageInfo()))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		if err := config.GenerateSchemaFile(configSchemaOutput); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		fmt.Printf("Schema written to %s\n", configSchemaOutput)
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runConfigKeybindings(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	known := make([]string, 0, len(input.Actions()))
	for _, a := range input.Actions() {
		known = append(known, string(a))
	}

	bindings := app.Config.Keybindings
	if len(bindings) == 0 {
		bindings = config.DefaultKeybindings()
	}
	// Known hotkeys missing from the table are listed as unbound.
	for _, name := range known {
		if _, ok := bindings[name]; !ok {
			bindings[name] = nil
		}
	}
	slices.Sort(known)

	styles.NewConfigRenderer(app.Theme).RenderKeybindings(os.Stdout, bindings, known)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := configFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigInfo(path, app.StorageInfo()))
	return nil
}

// configPath returns the config file in use, if any.
func configPath() string {
	if app != nil && app.ConfigManager != nil {
		if used := app.ConfigManager.GetConfigFile(); used != "" {
			return used
		}
	}
	return configFile
}
