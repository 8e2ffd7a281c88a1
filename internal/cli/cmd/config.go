package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kittyfont/kittyfont/internal/cli/styles"
	"github.com/kittyfont/kittyfont/internal/config"
)

var schemaJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect kittyfont's own configuration",
	Long:  `Show the config file location, the effective settings, and the documented keys.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file location and effective settings",
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every configuration key with defaults and constraints",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "emit the schema as JSON")
}

// runConfigStatus shows the config file path and the effective settings.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
	} else {
		fmt.Println(renderer.RenderConfigInfo(configFile))
	}

	fmt.Print(renderer.RenderSettings(app.Config))
	return nil
}

// runConfigSchema renders the documented configuration keys.
func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	keys := config.SchemaKeys()
	renderer := styles.NewConfigSchemaRenderer(app.Theme)

	if schemaJSON {
		out, err := renderer.RenderJSON(keys)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(renderer.Render(keys))
	return nil
}
