package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// SimpleUI implements UI with plain text and tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMigration prints one row per stage and the totals.
func (s *SimpleUI) DisplayMigration(report m.MigrationReport) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Stage", "Changes", "Lines"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, stage := range report.Stages {
		table.Append([]string{
			stage.Name,
			fmt.Sprintf("%d", stage.Changes),
			formatLines(stage.LinesBefore, stage.LinesAfter),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Stages %d", len(report.Stages)),
		fmt.Sprintf("%d", report.TotalChanges()),
		formatLines(report.LinesBefore, report.LinesAfter),
	})

	table.Render()

	verb := "Migrated"
	if report.DryRun {
		verb = "Dry run of"
	}

	s.printf("%s %s\n\n%s", verb, report.Path, tableBuffer.String())

	if report.Backup != "" {
		s.printf("\nBackup written to %s\n", report.Backup)
	}

	return nil
}

// DisplayDryRun prints the migrated text as it would have been written.
func (s *SimpleUI) DisplayDryRun(file m.WorkingFile) error {
	_, err := s.cmd.OutOrStdout().Write(file.Bytes())

	return err
}

// DisplayVerification prints a result table followed by the details of every
// failed pair.
func (s *SimpleUI) DisplayVerification(results []m.VerificationResult) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Produced", "Golden", "Result", "Detail"})

	failed := 0

	for _, result := range results {
		if !result.Passed() {
			failed++
		}

		table.Append([]string{
			string(result.Produced),
			string(result.Golden),
			resultStatus(result),
			describeResult(result),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(results)),
		"",
		fmt.Sprintf("%d failed", failed),
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	for _, result := range results {
		if result.Mismatch != nil && result.Mismatch.Line > 0 {
			s.printf("\n%s line %d\n  produced: %q\n  golden:   %q\n",
				result.Produced, result.Mismatch.Line, result.Mismatch.Produced, result.Mismatch.Golden)
		}

		if result.Diff != "" {
			s.printf("\n%s", result.Diff)
		}
	}

	return nil
}

// DisplayStages lists the pipeline in execution order.
func (s *SimpleUI) DisplayStages(stages []m.StageInfo) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"#", "Stage", "Rules", "Line stable"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	for _, stage := range stages {
		stable := "no"
		if stage.LineStable {
			stable = "yes"
		}

		table.Append([]string{
			fmt.Sprintf("%d", stage.Order),
			stage.Name,
			fmt.Sprintf("%d", stage.Rules),
			stable,
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayPreview prints the diff introduced by every stage that changed the
// file.
func (s *SimpleUI) DisplayPreview(path m.Path, snapshots []m.StageSnapshot) error {
	changed := 0

	for _, snapshot := range snapshots {
		if snapshot.Changes == 0 {
			continue
		}

		changed++

		s.printf("== %s (%d changes) ==\n%s\n", snapshot.Name, snapshot.Changes, strings.TrimRight(snapshot.Diff, "\n"))
	}

	s.printf("%d of %d stages changed %s\n", changed, stageCount(snapshots), path)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func formatLines(before, after int) string {
	if before == after {
		return fmt.Sprintf("%d", after)
	}

	return fmt.Sprintf("%d -> %d", before, after)
}

// stageCount ignores the leading snapshot of the unmodified file.
func stageCount(snapshots []m.StageSnapshot) int {
	if len(snapshots) == 0 {
		return 0
	}

	return len(snapshots) - 1
}

func resultStatus(result m.VerificationResult) string {
	switch {
	case result.Err != nil:
		return "ERROR"
	case result.Mismatch != nil:
		return "FAIL"
	default:
		return "PASS"
	}
}

func describeResult(result m.VerificationResult) string {
	switch {
	case result.Err != nil:
		return result.Err.Error()
	case result.Mismatch == nil:
		return ""
	case result.Mismatch.Line == 0:
		return fmt.Sprintf("%d lines, golden has %d", result.Mismatch.ProducedCount, result.Mismatch.GoldenCount)
	default:
		return fmt.Sprintf("line %d differs", result.Mismatch.Line)
	}
}
