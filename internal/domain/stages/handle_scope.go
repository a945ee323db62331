package stages

import (
	"strings"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// ScopeGuard describes one HandleScope flavour and the JSNI calls that
// replace it.
type ScopeGuard struct {
	Marker string
	Push   string
	Pop    string
}

// The leading space in the markers keeps " HandleScope" from matching inside
// "EscapableHandleScope".
var (
	PlainScope = ScopeGuard{
		Marker: " HandleScope",
		Push:   "JSNIPushLocalScope(env);",
		Pop:    "JSNIPopLocalScope(env);",
	}
	EscapableScope = ScopeGuard{
		Marker: " EscapableHandleScope",
		Push:   "JSNIPushEscapableLocalScope(env);",
		Pop:    "JSNIPopEscapableLocalScope(env);",
	}
)

// FindScopeBlocks returns the blocks opened by lines containing marker.
//
// A block is indented by the marker's column plus one space. It runs through
// blank lines and lines starting with that literal prefix and ends at the
// first other line. Scanning resumes after that line, so a guard nested in a
// block already found is never reported, and a guard with no such line
// before the end of the file yields no block.
func FindScopeBlocks(lines []string, marker string) []m.ScopeBlock {
	var blocks []m.ScopeBlock

	for i := 0; i < len(lines); {
		col := strings.Index(lines[i], marker)
		if col < 0 {
			i++
			continue
		}

		prefix := strings.Repeat(" ", col+1)
		end := blockEnd(lines, i+1, prefix)

		if end < 0 {
			i++
			continue
		}

		blocks = append(blocks, m.ScopeBlock{StartLine: i, EndLine: end, Prefix: prefix})
		i = end + 1
	}

	return blocks
}

func blockEnd(lines []string, from int, prefix string) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(lines[j], prefix) || strings.TrimSpace(lines[j]) == "" {
			continue
		}

		return j
	}

	return -1
}

// RewriteScopeBlocks replaces each guard line with push and inserts pop just
// before the block's end line. Blocks must be in source order; every block
// grows the text by one line, which shifts the ones after it.
func RewriteScopeBlocks(lines []string, blocks []m.ScopeBlock, push, pop string) []string {
	out := append([]string(nil), lines...)
	offset := 0

	for _, block := range blocks {
		start := block.StartLine + offset
		end := block.EndLine + offset

		out[start] = block.Prefix + push
		out = insertLine(out, end, block.Prefix+pop)
		offset++
	}

	return out
}

func insertLine(lines []string, at int, line string) []string {
	lines = append(lines, "")
	copy(lines[at+1:], lines[at:])
	lines[at] = line

	return lines
}

// HandleScopeStage rewrites plain guards first, then escapable ones.
type HandleScopeStage struct {
	guards []ScopeGuard
}

// NewHandleScopeStage builds the stage with both guard flavours.
func NewHandleScopeStage() *HandleScopeStage {
	return &HandleScopeStage{guards: []ScopeGuard{PlainScope, EscapableScope}}
}

// Name returns the stage name.
func (s *HandleScopeStage) Name() string {
	return StageHandleScope
}

// Apply runs one pass per guard flavour. Each block counts as three edits:
// the removed guard and the two inserted calls.
func (s *HandleScopeStage) Apply(lines []string) ([]string, int) {
	out := lines
	changes := 0

	for _, guard := range s.guards {
		blocks := FindScopeBlocks(out, guard.Marker)
		out = RewriteScopeBlocks(out, blocks, guard.Push, guard.Pop)
		changes += 3 * len(blocks)
	}

	return out, changes
}

// Rules returns the number of guard flavours.
func (s *HandleScopeStage) Rules() int {
	return len(s.guards)
}

// LineStable is false: every block adds a line.
func (s *HandleScopeStage) LineStable() bool {
	return false
}
