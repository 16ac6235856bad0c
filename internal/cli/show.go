package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jdhollis/grimoire/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display one record's full definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := loadCatalog()
		if err != nil {
			return handleError("dataset_load_failed", err, "")
		}

		id := args[0]
		matches := catalog.Search(fmt.Sprintf("id:'%s'", id))
		if len(matches) == 0 {
			return handleError("record_not_found",
				fmt.Errorf("no record with id '%s'", id),
				fmt.Sprintf("try 'grim search id:%s' for a substring match", id))
		}

		if jsonOutput {
			values := make([]any, len(matches))
			for i, idx := range matches {
				values[i] = catalog.Record(idx).Value
			}
			outputSuccess(map[string]interface{}{
				"id":      id,
				"records": values,
			}, &Meta{Count: len(matches)})
			return nil
		}

		for _, idx := range matches {
			rec := catalog.Record(idx)
			fmt.Printf("%s %s\n", ui.ID(rec.ID), ui.Hint(rec.Type))
			pretty, err := json.MarshalIndent(rec.Value, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render record: %w", err)
			}
			fmt.Printf("%s\n", pretty)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
