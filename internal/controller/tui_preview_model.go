package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

const stageListWidth = 30

type stageItem struct {
	order   int // index into the snapshots
	name    string
	changes int
}

func (s stageItem) FilterValue() string {
	return s.name
}

type stageDelegate struct{}

func (d stageDelegate) Height() int  { return 1 }
func (d stageDelegate) Spacing() int { return 0 }
func (d stageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d stageDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	stage, ok := item.(stageItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)

	if stage.changes == 0 {
		nameStyle = mutedStyle
		countStyle = countStyle.Foreground(lipgloss.Color("8")).Bold(false)
	}

	if index == l.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = countStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	}

	count := ""
	if stage.order > 0 {
		count = fmt.Sprintf("%d", stage.changes)
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		countStyle.Render(count),
		nameStyle.Render(truncateToWidth(stage.name, l.Width()-6)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// previewModel browses the snapshots of a traced migration: a stage list on
// the left, the selected stage's diff or full text on the right.
type previewModel struct {
	path      m.Path
	snapshots []m.StageSnapshot
	stages    list.Model
	content   viewport.Model
	showDiff  bool
	selected  int
	width     int
	height    int
}

func newPreviewModel(path m.Path, snapshots []m.StageSnapshot) previewModel {
	items := make([]list.Item, 0, len(snapshots))
	for i, snapshot := range snapshots {
		items = append(items, stageItem{order: i, name: snapshot.Name, changes: snapshot.Changes})
	}

	stages := list.New(items, stageDelegate{}, stageListWidth, 20)
	stages.SetShowPagination(false)
	stages.SetShowFilter(true)
	stages.SetShowHelp(false)
	stages.SetShowTitle(false)
	stages.SetShowStatusBar(false)
	stages.FilterInput.Placeholder = "Filter stages…"

	pm := previewModel{
		path:      path,
		snapshots: snapshots,
		stages:    stages,
		content:   viewport.New(80, 20),
		showDiff:  true,
		width:     stageListWidth + 84,
		height:    24,
	}
	pm.syncContent()

	return pm
}

func (pm previewModel) Init() tea.Cmd {
	return nil
}

func (pm previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.resize()

	case tea.KeyMsg:
		if pm.stages.FilterState() == list.Filtering {
			return pm.updateList(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return pm, tea.Quit
		case "d", "tab":
			pm.showDiff = !pm.showDiff
			pm.syncContent()
		case "pgdown", "pgup", "ctrl+d", "ctrl+u":
			pm.content, cmd = pm.content.Update(msg)
		default:
			return pm.updateList(msg)
		}
	}

	return pm, cmd
}

func (pm previewModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	pm.stages, cmd = pm.stages.Update(msg)

	if item, ok := pm.stages.SelectedItem().(stageItem); ok && item.order != pm.selected {
		pm.syncContent()
		pm.content.GotoTop()
	}

	return pm, cmd
}

func (pm *previewModel) resize() {
	bodyHeight := max(pm.height-5, 5)

	pm.stages.SetSize(stageListWidth, bodyHeight)
	pm.content.Width = max(pm.width-stageListWidth-4, 20)
	pm.content.Height = bodyHeight
}

// syncContent shows the selected snapshot in the viewport.
func (pm *previewModel) syncContent() {
	item, ok := pm.stages.SelectedItem().(stageItem)
	if !ok {
		pm.content.SetContent("")
		return
	}

	pm.selected = item.order
	snapshot := pm.snapshots[item.order]

	if !pm.showDiff {
		numbered := make([]string, len(snapshot.Lines))
		for i, line := range snapshot.Lines {
			numbered[i] = mutedStyle.Render(fmt.Sprintf("%4d ", i+1)) + line
		}

		pm.content.SetContent(strings.Join(numbered, "\n"))

		return
	}

	if snapshot.Diff == "" {
		pm.content.SetContent(mutedStyle.Render("no changes in this stage"))
		return
	}

	pm.content.SetContent(colorizeDiff(snapshot.Diff))
}

func (pm previewModel) View() string {
	mode := "diff"
	if !pm.showDiff {
		mode = "text"
	}

	snapshot := pm.snapshots[pm.selected]

	title := lipgloss.NewStyle().Padding(0, 0, 0, 1).Render(
		titleStyle.Render("v8tojsni preview ") + accentStyle.Render(string(pm.path)),
	)
	summary := lipgloss.NewStyle().Padding(0, 0, 0, 1).Render(fmt.Sprintf(
		"%s: %s changes, %d lines [%s]",
		snapshot.Name,
		accentStyle.Render(fmt.Sprintf("%d", snapshot.Changes)),
		len(snapshot.Lines),
		mode,
	))

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6"))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render(pm.stages.View()),
		box.BorderForeground(lipgloss.Color("8")).Render(pm.content.View()),
	)

	footer := mutedStyle.Render("↑/k ↓/j stage • d diff/text • pgup/pgdn scroll • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, body, footer)
}
