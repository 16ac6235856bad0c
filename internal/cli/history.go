package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdhollis/grimoire/internal/history"
	"github.com/jdhollis/grimoire/internal/ui"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.ResolveHistoryPath())
		if err != nil {
			return handleError("history_open_failed", err, "")
		}
		defer store.Close()

		if historyClear {
			if err := store.Clear(); err != nil {
				return handleError("history_clear_failed", err, "")
			}
			if jsonOutput {
				outputSuccess(map[string]interface{}{"cleared": true}, nil)
				return nil
			}
			fmt.Println(ui.Successf("history cleared"))
			return nil
		}

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return handleError("history_read_failed", err, "")
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{"entries": entries}, &Meta{Count: len(entries)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No query history yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s %s\n",
				ui.Hint(e.ExecutedAt.Local().Format("2006-01-02 15:04")),
				e.Query,
				ui.Hint(ui.Count(e.Matches, "match", "matches")))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Clear the query history")
	rootCmd.AddCommand(historyCmd)
}
