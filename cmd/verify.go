package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/v8tojsni/internal/domain"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

var verifyFixturesFlag string
var verifyPatternFlag string
var verifyRecursiveFlag bool
var verifyParallelFlag int
var verifyDiffFlag bool

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [<produced> <golden>]",
		Short: "Compare migrated output with golden references",
		Long: `Compare a migrated file with its golden reference line by line, or migrate
every fixture in a directory in memory and compare it with <fixture>.golden.
The command fails on the first differing line of any pair.

Examples:
  v8tojsni verify out/addon.cc testdata/addon.cc.golden
  v8tojsni verify --fixtures testdata --parallel 4 --diff`,
		Args: func(cmd *cobra.Command, args []string) error {
			if verifyFixturesFlag != "" {
				return cobra.NoArgs(cmd, args)
			}

			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			verifyArgs := domain.VerifyArgs{
				Fixtures:  m.Path(verifyFixturesFlag),
				Pattern:   verifyPatternFlag,
				Recursive: verifyRecursiveFlag,
				Parallel:  verifyParallelFlag,
				Diff:      verifyDiffFlag,
			}

			if len(args) == 2 {
				verifyArgs.Produced = m.Path(args[0])
				verifyArgs.Golden = m.Path(args[1])
			}

			return workflow.Verify(cmd.Context(), verifyArgs)
		},
	}
	cmd.Flags().StringVarP(&verifyFixturesFlag, "fixtures", "f", "", "directory of fixtures with .golden references")
	cmd.Flags().StringVar(&verifyPatternFlag, "pattern", domain.DefaultFixturePattern, "glob selecting fixture file names")
	cmd.Flags().BoolVarP(&verifyRecursiveFlag, "recursive", "R", false, "descend into subdirectories of the fixture directory")
	cmd.Flags().IntVarP(&verifyParallelFlag, "parallel", "p", 1, "number of fixtures checked concurrently")
	cmd.Flags().BoolVarP(&verifyDiffFlag, "diff", "d", false, "print a unified diff for every failing pair")

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
