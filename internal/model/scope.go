package model

// ScopeBlock is an indentation-delimited block opened by a scope-guard line.
// StartLine is the guard line and EndLine the first dedented line after the
// block, both zero-based. Prefix is the literal whitespace every line inside
// the block starts with.
type ScopeBlock struct {
	StartLine int
	EndLine   int
	Prefix    string
}
