package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// GoldenSuffix is appended to a fixture path to find its golden reference.
const GoldenSuffix = ".golden"

// MismatchError reports the first difference between a produced file and its
// golden reference.
type MismatchError struct {
	Produced m.Path
	Golden   m.Path
	Mismatch m.LineMismatch
}

func (e *MismatchError) Error() string {
	if e.Mismatch.Line == 0 {
		return fmt.Sprintf("%s and %s differ in length: %d lines produced, %d expected",
			e.Produced, e.Golden, e.Mismatch.ProducedCount, e.Mismatch.GoldenCount)
	}

	return fmt.Sprintf("%s and %s differ at line %d:\n  produced: %q\n  golden:   %q",
		e.Produced, e.Golden, e.Mismatch.Line, e.Mismatch.Produced, e.Mismatch.Golden)
}

// CompareLines checks line counts first and then every line pair, returning
// nil when both sides are equal.
func CompareLines(produced, golden []string) *m.LineMismatch {
	if len(produced) != len(golden) {
		return &m.LineMismatch{ProducedCount: len(produced), GoldenCount: len(golden)}
	}

	for i := range produced {
		if produced[i] != golden[i] {
			return &m.LineMismatch{
				Line:          i + 1,
				Produced:      produced[i],
				Golden:        golden[i],
				ProducedCount: len(produced),
				GoldenCount:   len(golden),
			}
		}
	}

	return nil
}

// ResultError turns a failed verification into an error: the read error if
// there was one, otherwise a *MismatchError.
func ResultError(result m.VerificationResult) error {
	if result.Err != nil {
		return result.Err
	}

	if result.Mismatch == nil {
		return nil
	}

	return &MismatchError{Produced: result.Produced, Golden: result.Golden, Mismatch: *result.Mismatch}
}

// ErrVerificationFailed is returned when at least one pair did not match.
var ErrVerificationFailed = errors.New("verification failed")

// Verifier compares migrated text against golden reference files.
type Verifier interface {
	// VerifyFiles compares two files already on disk.
	VerifyFiles(produced, golden m.Path, withDiff bool) m.VerificationResult
	// VerifyFixture migrates fixture in memory and compares the result with
	// fixture+GoldenSuffix. The fixture itself is left untouched.
	VerifyFixture(fixture m.Path, withDiff bool) m.VerificationResult
}

type verifier struct {
	fsAdapter adapter.SourceFSAdapter
	orch      Orchestrator
}

// NewVerifier constructs a Verifier that reads through fsAdapter and migrates
// fixtures with orch.
func NewVerifier(fsAdapter adapter.SourceFSAdapter, orch Orchestrator) Verifier {
	return &verifier{fsAdapter: fsAdapter, orch: orch}
}

func (v *verifier) VerifyFiles(produced, golden m.Path, withDiff bool) m.VerificationResult {
	result := m.VerificationResult{Produced: produced, Golden: golden}

	producedFile, err := v.read(produced)
	if err != nil {
		result.Err = err
		return result
	}

	return v.compare(result, producedFile.Lines, golden, withDiff)
}

func (v *verifier) VerifyFixture(fixture m.Path, withDiff bool) m.VerificationResult {
	golden := fixture + GoldenSuffix
	result := m.VerificationResult{Produced: fixture, Golden: golden}

	source, err := v.read(fixture)
	if err != nil {
		result.Err = err
		return result
	}

	migrated, _ := v.orch.Transform(source)

	return v.compare(result, migrated.Lines, golden, withDiff)
}

func (v *verifier) compare(result m.VerificationResult, produced []string, golden m.Path, withDiff bool) m.VerificationResult {
	goldenFile, err := v.read(golden)
	if err != nil {
		result.Err = err
		return result
	}

	result.Mismatch = CompareLines(produced, goldenFile.Lines)
	if result.Mismatch != nil && withDiff {
		result.Diff = UnifiedDiff(goldenFile.Lines, produced, string(golden), string(result.Produced))
	}

	return result
}

func (v *verifier) read(path m.Path) (m.WorkingFile, error) {
	content, err := v.fsAdapter.ReadFile(path)
	if err != nil {
		return m.WorkingFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return m.NewWorkingFile(path, content), nil
}

// UnifiedDiff renders a unified diff from a to b with three lines of context.
// It returns an empty string when both sides are equal.
func UnifiedDiff(a, b []string, fromName, toName string) string {
	diff := difflib.UnifiedDiff{
		A:        withNewlines(a),
		B:        withNewlines(b),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}

	return out
}

// summarize joins the errors of every failed result, one per line.
func summarize(results []m.VerificationResult) string {
	var b strings.Builder

	for _, result := range results {
		if err := ResultError(result); err != nil {
			b.WriteString(err.Error())
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
