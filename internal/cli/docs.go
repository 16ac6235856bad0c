package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	builtindocs "github.com/jdhollis/grimoire/docs"
	"github.com/jdhollis/grimoire/internal/ui"
)

const docsIndexPath = "index.yaml"

type docsTopic struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Path  string `yaml:"path" json:"path"`
}

type docsIndex struct {
	Topics []docsTopic `yaml:"topics"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse the bundled documentation",
	Long: `Docs lists the bundled documentation topics, or renders one topic in the
terminal. Pipe the output to get plain markdown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadDocsIndex()
		if err != nil {
			return handleError("docs_index_failed", err, "")
		}

		if len(args) == 0 {
			return listDocsTopics(index)
		}
		return showDocsTopic(index, args[0])
	},
}

func loadDocsIndex() (*docsIndex, error) {
	raw, err := builtindocs.FS.ReadFile(docsIndexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs index: %w", err)
	}
	var index docsIndex
	if err := yaml.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("failed to parse docs index: %w", err)
	}
	return &index, nil
}

func listDocsTopics(index *docsIndex) error {
	if jsonOutput {
		outputSuccess(map[string]interface{}{"topics": index.Topics}, &Meta{Count: len(index.Topics)})
		return nil
	}

	fmt.Println(ui.Header("Topics"))
	for _, t := range index.Topics {
		fmt.Printf("  %s  %s\n", ui.Accent.Render(t.ID), ui.Hint(t.Title))
	}
	fmt.Println()
	fmt.Println(ui.Hint("grim docs <topic> to read one"))
	return nil
}

func showDocsTopic(index *docsIndex, id string) error {
	var topic *docsTopic
	for i := range index.Topics {
		if index.Topics[i].ID == id {
			topic = &index.Topics[i]
			break
		}
	}
	if topic == nil {
		return handleError("docs_topic_not_found",
			fmt.Errorf("unknown docs topic '%s'", id),
			"run 'grim docs' to list topics")
	}

	content, err := builtindocs.FS.ReadFile(topic.Path)
	if err != nil {
		return handleError("docs_read_failed", err, "")
	}

	// Plain markdown when piped; rendered when on a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(string(content))
		return nil
	}

	d := ui.NewDisplayContext()
	rendered, err := ui.RenderMarkdown(string(content), d.TermWidth-ui.MarkdownRenderMargin)
	if err != nil {
		return fmt.Errorf("failed to render docs: %w", err)
	}
	fmt.Print(rendered)
	return nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
