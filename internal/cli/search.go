package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdhollis/grimoire/internal/history"
	"github.com/jdhollis/grimoire/internal/model"
	"github.com/jdhollis/grimoire/internal/ui"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the dataset with the grimoire query language",
	Long: `Search evaluates a query against the active dataset and lists matching
records. Terms separated by whitespace are ANDed together; see
'grim docs query-language' for the grammar.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := loadCatalog()
		if err != nil {
			return handleError("dataset_load_failed", err, "")
		}

		// Join all args as the search query
		query := strings.Join(args, " ")

		start := time.Now()
		matches := catalog.Search(query)
		elapsed := time.Since(start)

		recordHistory(query, len(matches))

		limited := matches
		if searchLimit > 0 && len(limited) > searchLimit {
			limited = limited[:searchLimit]
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"query":   query,
				"results": formatMatches(catalog.Record, limited),
			}, &Meta{Count: len(matches), QueryTimeMs: elapsed.Milliseconds()})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No matches for: %s\n", query)
			return nil
		}

		fmt.Printf("%s %s\n\n", ui.Header(query), ui.Count(len(matches), "match", "matches"))

		d := ui.NewDisplayContext()
		rows := make([]ui.ResultRow, len(limited))
		for i, idx := range limited {
			rec := catalog.Record(idx)
			rows[i] = ui.ResultRow{
				Num:      i + 1,
				ID:       rec.ID,
				Type:     rec.Type,
				Category: rec.Category(),
			}
		}
		fmt.Print(ui.RenderResults(d, rows))

		if len(limited) < len(matches) {
			fmt.Println(ui.Hint(fmt.Sprintf("...and %d more (raise --limit to see them)", len(matches)-len(limited))))
		}
		return nil
	},
}

type matchView struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

func formatMatches(record func(int) model.Record, indices []int) []matchView {
	out := make([]matchView, len(indices))
	for i, idx := range indices {
		rec := record(idx)
		out[i] = matchView{
			Index:    idx,
			ID:       rec.ID,
			Type:     rec.Type,
			Category: rec.Category(),
		}
	}
	return out
}

// recordHistory appends the query to the history database. History is a
// convenience: failures degrade to a warning, never a failed search.
func recordHistory(query string, matches int) {
	store, err := history.Open(cfg.ResolveHistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Append(query, matches); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 50, "Maximum number of results to display")
	rootCmd.AddCommand(searchCmd)
}
