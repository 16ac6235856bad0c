package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdhollis/grimoire/internal/config"
	"github.com/jdhollis/grimoire/internal/ui"
)

var (
	// Global flags
	configPath  string
	datasetFlag string

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "grim",
	Short: "Grimoire - browse and search game-entity definitions",
	Long: `Grimoire indexes large collections of game-entity definitions (JSON
object trees) and finds records through a compact query language:
bare words, 'quoted' exact terms, and classifier:value filters like
id:, type:, category:, or any dot path into a definition.

Run 'grim docs query-language' for the full query reference.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "", "Dataset name from config")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
}
