// Package rewrite implements the line-oriented substitution executor that
// every migration stage is built from.
package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Action selects what a rule does to the lines its pattern matches.
type Action int

const (
	// Substitute replaces the matched text with the expanded template.
	Substitute Action = iota
	// DeleteLine removes every line the pattern matches.
	DeleteLine
	// InsertBefore inserts the template text above the first matching line.
	InsertBefore
)

func (a Action) String() string {
	switch a {
	case Substitute:
		return "substitute"
	case DeleteLine:
		return "delete"
	case InsertBefore:
		return "insert"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Scope limits how many occurrences a Substitute rule rewrites.
type Scope int

const (
	// Global rewrites every occurrence on every line.
	Global Scope = iota
	// FirstMatch rewrites only the first occurrence in the whole text.
	FirstMatch
)

// Rule is one declarative entry of a pattern table.
//
// Template back-references are written \1 through \9. For InsertBefore rules
// the template is literal text and may span several lines.
type Rule struct {
	Action   Action
	Match    string
	Template string
	Scope    Scope
	// Unless, when set, exempts lines it matches from the rule.
	Unless string
}

// Sub builds a global substitution rule.
func Sub(match, template string) Rule {
	return Rule{Action: Substitute, Match: match, Template: template}
}

// SubUnless builds a global substitution that skips lines matching unless.
func SubUnless(match, template, unless string) Rule {
	return Rule{Action: Substitute, Match: match, Template: template, Unless: unless}
}

// Delete builds a rule removing every line matching match.
func Delete(match string) Rule {
	return Rule{Action: DeleteLine, Match: match}
}

// InsertOnce builds a rule inserting text above the first line matching
// match. Nothing is inserted when the first line of text is already present.
func InsertOnce(match, text string) Rule {
	return Rule{Action: InsertBefore, Match: match, Template: text, Scope: FirstMatch}
}

// Pattern-table defects reported by Compile.
var (
	ErrEmptyPattern  = errors.New("empty match pattern")
	ErrCaptureArity  = errors.New("template references a capture group the pattern does not define")
	ErrInsertCapture = errors.New("insert template must not reference capture groups")
)

// Compiled is a Rule ready to run.
type Compiled struct {
	rule   Rule
	match  *regexp.Regexp
	unless *regexp.Regexp
	expand string
	arity  int
	insert []string
}

// Compile validates a rule: the pattern must be a valid regular expression
// and the template may only reference groups the pattern captures.
func Compile(rule Rule) (*Compiled, error) {
	if rule.Match == "" {
		return nil, ErrEmptyPattern
	}

	match, err := regexp.Compile(rule.Match)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", rule.Match, err)
	}

	c := &Compiled{rule: rule, match: match}

	if rule.Unless != "" {
		c.unless, err = regexp.Compile(rule.Unless)
		if err != nil {
			return nil, fmt.Errorf("failed to compile unless pattern %q: %w", rule.Unless, err)
		}
	}

	expand, arity := translateTemplate(rule.Template)

	switch rule.Action {
	case Substitute:
		if arity > match.NumSubexp() {
			return nil, fmt.Errorf("%w: %q uses \\%d, %q has %d", ErrCaptureArity, rule.Template, arity, rule.Match, match.NumSubexp())
		}

		c.expand = expand
		c.arity = arity
	case InsertBefore:
		if arity > 0 {
			return nil, fmt.Errorf("%w: %q", ErrInsertCapture, rule.Template)
		}

		c.insert = strings.Split(rule.Template, "\n")
	case DeleteLine:
	default:
		return nil, fmt.Errorf("unknown rule action %v", rule.Action)
	}

	return c, nil
}

// MustCompile is like Compile but panics on a pattern-table defect.
func MustCompile(rule Rule) *Compiled {
	c, err := Compile(rule)
	if err != nil {
		panic(err)
	}

	return c
}

// Rule returns the source rule.
func (c *Compiled) Rule() Rule {
	return c.rule
}

// Arity is the highest capture group the template references.
func (c *Compiled) Arity() int {
	return c.arity
}

func (c *Compiled) String() string {
	return fmt.Sprintf("%s %q -> %q", c.rule.Action, c.rule.Match, c.rule.Template)
}

// Apply runs the rule over lines and returns the new lines together with the
// number of lines it changed, removed or inserted. The input is not modified.
func (c *Compiled) Apply(lines []string) ([]string, int) {
	switch c.rule.Action {
	case DeleteLine:
		return c.deleteLines(lines)
	case InsertBefore:
		return c.insertBefore(lines)
	default:
		if c.rule.Scope == FirstMatch {
			return c.substituteFirst(lines)
		}

		return c.substituteAll(lines)
	}
}

func (c *Compiled) skip(line string) bool {
	return c.unless != nil && c.unless.MatchString(line)
}

func (c *Compiled) substituteAll(lines []string) ([]string, int) {
	out := make([]string, len(lines))
	changes := 0

	for i, line := range lines {
		out[i] = line
		if c.skip(line) || !c.match.MatchString(line) {
			continue
		}

		replaced := c.match.ReplaceAllString(line, c.expand)
		if replaced != line {
			out[i] = replaced
			changes++
		}
	}

	return out, changes
}

func (c *Compiled) substituteFirst(lines []string) ([]string, int) {
	out := append([]string(nil), lines...)

	for i, line := range out {
		if c.skip(line) {
			continue
		}

		loc := c.match.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		dst := c.match.ExpandString(nil, c.expand, line, loc)
		replaced := line[:loc[0]] + string(dst) + line[loc[1]:]

		if replaced == line {
			return out, 0
		}

		out[i] = replaced

		return out, 1
	}

	return out, 0
}

func (c *Compiled) deleteLines(lines []string) ([]string, int) {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if !c.skip(line) && c.match.MatchString(line) {
			continue
		}

		out = append(out, line)
	}

	return out, len(lines) - len(out)
}

func (c *Compiled) insertBefore(lines []string) ([]string, int) {
	for _, line := range lines {
		if line == c.insert[0] {
			return append([]string(nil), lines...), 0
		}
	}

	for i, line := range lines {
		if c.skip(line) || !c.match.MatchString(line) {
			continue
		}

		out := make([]string, 0, len(lines)+len(c.insert))
		out = append(out, lines[:i]...)
		out = append(out, c.insert...)
		out = append(out, lines[i:]...)

		return out, len(c.insert)
	}

	return append([]string(nil), lines...), 0
}

// translateTemplate turns \N back-references into regexp expansion syntax and
// escapes literal dollars. It returns the highest group referenced.
func translateTemplate(template string) (string, int) {
	var b strings.Builder

	arity := 0

	for i := 0; i < len(template); i++ {
		ch := template[i]

		switch {
		case ch == '$':
			b.WriteString("$$")
		case ch == '\\' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9':
			n := int(template[i+1] - '0')
			if n > arity {
				arity = n
			}

			fmt.Fprintf(&b, "${%d}", n)
			i++
		case ch == '\\' && i+1 < len(template) && template[i+1] == '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(ch)
		}
	}

	return b.String(), arity
}
