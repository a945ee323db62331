package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI with styled terminal output and an interactive
// Bubble Tea preview.
type TUI struct {
	output io.Writer
	input  io.Reader // nil reads the terminal
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayMigration lists the stages that changed the file.
func (t *TUI) DisplayMigration(report m.MigrationReport) error {
	verb := "Migrated"
	if report.DryRun {
		verb = "Dry run of"
	}

	t.printf("%s %s\n", titleStyle.Render(verb), accentStyle.Render(string(report.Path)))

	untouched := 0

	for _, stage := range report.Stages {
		if stage.Changes == 0 {
			untouched++
			continue
		}

		t.printf("  %-20s %s\n", stage.Name, accentStyle.Render(fmt.Sprintf("%d", stage.Changes)))
	}

	t.printf("%s\n", mutedStyle.Render(fmt.Sprintf(
		"%d changes, %d stages untouched, lines %s",
		report.TotalChanges(), untouched, formatLines(report.LinesBefore, report.LinesAfter),
	)))

	if report.Backup != "" {
		t.printf("%s\n", mutedStyle.Render("backup: "+string(report.Backup)))
	}

	return nil
}

// DisplayDryRun prints the migrated text unstyled so it can be piped.
func (t *TUI) DisplayDryRun(file m.WorkingFile) error {
	_, err := t.output.Write(file.Bytes())

	return err
}

// DisplayVerification prints one status line per pair, then the diffs.
func (t *TUI) DisplayVerification(results []m.VerificationResult) error {
	passed := 0

	for _, result := range results {
		status := failStyle.Render(resultStatus(result))
		if result.Passed() {
			status = passStyle.Render(resultStatus(result))
			passed++
		}

		line := fmt.Sprintf("%-5s %s", status, result.Produced)
		if detail := describeResult(result); detail != "" {
			line += " " + mutedStyle.Render(detail)
		}

		t.printf("%s\n", line)
	}

	for _, result := range results {
		if result.Diff != "" {
			t.printf("\n%s\n", colorizeDiff(result.Diff))
		}
	}

	t.printf("%s\n", mutedStyle.Render(fmt.Sprintf("%d passed, %d failed", passed, len(results)-passed)))

	return nil
}

// DisplayStages lists the pipeline in execution order.
func (t *TUI) DisplayStages(stages []m.StageInfo) error {
	t.printf("%s\n", titleStyle.Render("Migration pipeline"))

	for _, stage := range stages {
		shape := mutedStyle.Render("line stable")
		if !stage.LineStable {
			shape = accentStyle.Render("may add lines")
		}

		t.printf("%3d  %-20s %3d rules  %s\n", stage.Order, stage.Name, stage.Rules, shape)
	}

	return nil
}

// DisplayPreview opens an interactive browser over the snapshots.
func (t *TUI) DisplayPreview(path m.Path, snapshots []m.StageSnapshot) error {
	if len(snapshots) == 0 {
		t.printf("%s\n", mutedStyle.Render("nothing to preview"))
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	if _, err := tea.NewProgram(newPreviewModel(path, snapshots), opts...).Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func colorizeDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = accentStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = delStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
