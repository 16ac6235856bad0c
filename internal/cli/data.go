package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jdhollis/grimoire/internal/config"
	"github.com/jdhollis/grimoire/internal/dataset"
	"github.com/jdhollis/grimoire/internal/ui"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage dataset sources",
}

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := make([]string, 0, len(cfg.Datasets))
		for name := range cfg.Datasets {
			names = append(names, name)
		}
		sort.Strings(names)

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"default":  cfg.DefaultDataset,
				"datasets": cfg.Datasets,
			}, &Meta{Count: len(names)})
			return nil
		}

		if len(names) == 0 {
			fmt.Println("No datasets configured.")
			fmt.Println(ui.Hint("Add [datasets.<name>] entries to " + config.DefaultPath()))
			return nil
		}

		for _, name := range names {
			src := cfg.Datasets[name]
			marker := "  "
			if name == cfg.DefaultDataset {
				marker = ui.Accent.Render("* ")
			}
			location := src.Path
			if location == "" {
				location = src.URL
			}
			fmt.Printf("%s%s  %s\n", marker, name, ui.Hint(location))
		}
		return nil
	},
}

var dataUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, ok := cfg.Datasets[name]; !ok {
			return handleError("dataset_not_found",
				fmt.Errorf("dataset '%s' not found in config", name),
				"run 'grim data list' to see configured datasets")
		}

		cfg.DefaultDataset = name
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.SaveTo(path, cfg); err != nil {
			return handleError("config_save_failed", err, "")
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{"default": name}, nil)
			return nil
		}
		fmt.Println(ui.Successf("default dataset set to %s", name))
		return nil
	},
}

var dataFetchCmd = &cobra.Command{
	Use:   "fetch [name]",
	Short: "Download a URL-backed dataset into the local cache",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := datasetFlag
		if len(args) == 1 {
			name = args[0]
		}

		resolved, src, err := cfg.GetDataset(name)
		if err != nil {
			return handleError("dataset_not_found", err, "run 'grim data list' to see configured datasets")
		}
		if src.URL == "" {
			return handleError("dataset_not_remote",
				fmt.Errorf("dataset '%s' has no url; its records load from %s", resolved, src.Path), "")
		}

		path, err := dataset.Fetch(cmd.Context(), src.URL, resolved, cfg.ResolveCacheDir())
		if err != nil {
			return handleError("fetch_failed", err, "")
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"dataset": resolved,
				"path":    path,
			}, nil)
			return nil
		}
		fmt.Println(ui.Successf("fetched %s", resolved))
		fmt.Println(ui.Hint(path))
		return nil
	},
}

func init() {
	dataCmd.AddCommand(dataListCmd)
	dataCmd.AddCommand(dataUseCmd)
	dataCmd.AddCommand(dataFetchCmd)
	rootCmd.AddCommand(dataCmd)
}
