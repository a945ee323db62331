package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/v8tojsni/internal/domain"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show what every stage does to a file without writing it",
		Long: `Run the migration in memory and show the file after every stage.
On a terminal this opens an interactive browser; otherwise the diff of every
stage that changed the file is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Preview(domain.PreviewArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
