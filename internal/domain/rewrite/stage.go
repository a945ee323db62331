package rewrite

// Stage is one named step of the migration pipeline. Apply never modifies its
// input and reports how many edits it made.
type Stage interface {
	Name() string
	Apply(lines []string) ([]string, int)
}

// Describer is implemented by stages that can report their shape without
// running.
type Describer interface {
	Rules() int
	LineStable() bool
}

// Describe returns the rule count and line stability of a stage, or zero
// values when the stage does not implement Describer.
func Describe(s Stage) (rules int, lineStable bool) {
	d, ok := s.(Describer)
	if !ok {
		return 0, false
	}

	return d.Rules(), d.LineStable()
}

// RuleStage applies its rules top to bottom, each one committed before the
// next begins.
type RuleStage struct {
	name  string
	rules []*Compiled
}

// NewRuleStage compiles rules into a stage. It panics on a malformed rule,
// since the tables it is fed are fixed at build time.
func NewRuleStage(name string, rules ...Rule) *RuleStage {
	compiled := make([]*Compiled, 0, len(rules))
	for _, rule := range rules {
		compiled = append(compiled, MustCompile(rule))
	}

	return &RuleStage{name: name, rules: compiled}
}

// Name returns the stage name.
func (s *RuleStage) Name() string {
	return s.name
}

// Apply runs every rule in order.
func (s *RuleStage) Apply(lines []string) ([]string, int) {
	out := append([]string(nil), lines...)
	total := 0

	for _, rule := range s.rules {
		var changes int

		out, changes = rule.Apply(out)
		total += changes
	}

	return out, total
}

// Rules returns the number of rules in the stage.
func (s *RuleStage) Rules() int {
	return len(s.rules)
}

// LineStable reports whether the stage only rewrites within lines.
func (s *RuleStage) LineStable() bool {
	for _, rule := range s.rules {
		if rule.rule.Action != Substitute {
			return false
		}
	}

	return true
}

// Compiled returns the stage's rules in application order.
func (s *RuleStage) Compiled() []*Compiled {
	return s.rules
}
