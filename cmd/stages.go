package cmd

import (
	"github.com/spf13/cobra"
)

// stagesCmd represents the stages command.
var stagesCmd = newStagesCmd()

func newStagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the migration stages in execution order",
		Long:  "List the fixed migration pipeline: order, stage name, rule count and whether the stage keeps the line count.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Stages()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
