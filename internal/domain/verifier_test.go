package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	"github.com/mouse-blink/v8tojsni/internal/config"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

func TestCompareLines(t *testing.T) {
	tests := []struct {
		name     string
		produced []string
		golden   []string
		want     *m.LineMismatch
	}{
		{
			name:     "equal",
			produced: []string{"a", "b"},
			golden:   []string{"a", "b"},
			want:     nil,
		},
		{
			name:     "both empty",
			produced: []string{},
			golden:   []string{},
			want:     nil,
		},
		{
			name:     "line count differs",
			produced: []string{"a"},
			golden:   []string{"a", "b"},
			want:     &m.LineMismatch{ProducedCount: 1, GoldenCount: 2},
		},
		{
			name:     "second line differs",
			produced: []string{"a", "b", "c"},
			golden:   []string{"a", "x", "c"},
			want:     &m.LineMismatch{Line: 2, Produced: "b", Golden: "x", ProducedCount: 3, GoldenCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareLines(tt.produced, tt.golden))
		})
	}
}

func TestResultError(t *testing.T) {
	errRead := errors.New("unreadable")

	assert.NoError(t, ResultError(m.VerificationResult{}))
	assert.ErrorIs(t, ResultError(m.VerificationResult{Err: errRead}), errRead)

	err := ResultError(m.VerificationResult{
		Produced: "out.cc",
		Golden:   "out.cc.golden",
		Mismatch: &m.LineMismatch{Line: 3, Produced: "x", Golden: "y", ProducedCount: 4, GoldenCount: 4},
	})

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Mismatch.Line)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"x"`)

	countErr := ResultError(m.VerificationResult{
		Produced: "out.cc",
		Golden:   "out.cc.golden",
		Mismatch: &m.LineMismatch{ProducedCount: 4, GoldenCount: 5},
	})
	assert.Contains(t, countErr.Error(), "4 lines produced, 5 expected")
}

func newLocalVerifier() Verifier {
	fs := adapter.NewLocalSourceFSAdapter()
	orch := NewOrchestrator(fs, adapter.NewLocalBackupStore(fs), config.Default(), nil)

	return NewVerifier(fs, orch)
}

func TestVerifier_VerifyFixture_Golden(t *testing.T) {
	result := newLocalVerifier().VerifyFixture(m.Path(filepath.Join(fixtureDir, fixtureName)), true)

	require.NoError(t, result.Err)
	assert.True(t, result.Passed(), "%v", ResultError(result))
	assert.Empty(t, result.Diff)
}

func TestVerifier_MutatedGoldenNamesTheLine(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, fixtureName)
	require.NoError(t, os.WriteFile(fixture, readTestdata(t, fixtureName), 0o600))

	golden := strings.Split(string(readTestdata(t, fixtureName+GoldenSuffix)), "\n")
	golden[7] = strings.Replace(golden[7], "Wrong", "wrong", 1)
	require.NoError(t, os.WriteFile(fixture+GoldenSuffix, []byte(strings.Join(golden, "\n")), 0o600))

	result := newLocalVerifier().VerifyFixture(m.Path(fixture), true)

	require.NoError(t, result.Err)
	require.NotNil(t, result.Mismatch)
	assert.Equal(t, 8, result.Mismatch.Line)
	assert.Contains(t, result.Mismatch.Produced, `"Wrong number of arguments"`)
	assert.Contains(t, result.Mismatch.Golden, `"wrong number of arguments"`)
	assert.Contains(t, result.Diff, "@@")

	var mismatch *MismatchError
	assert.True(t, errors.As(ResultError(result), &mismatch))
}

func TestVerifier_VerifyFiles(t *testing.T) {
	dir := t.TempDir()
	produced := filepath.Join(dir, "out.cc")
	golden := filepath.Join(dir, "out.cc.golden")

	require.NoError(t, os.WriteFile(produced, []byte("a\nb\n"), 0o600))
	require.NoError(t, os.WriteFile(golden, []byte("a\nb\nc\n"), 0o600))

	v := newLocalVerifier()

	result := v.VerifyFiles(m.Path(produced), m.Path(golden), false)
	require.NotNil(t, result.Mismatch)
	assert.Zero(t, result.Mismatch.Line)
	assert.Empty(t, result.Diff)

	result = v.VerifyFiles(m.Path(produced), m.Path(produced), false)
	assert.True(t, result.Passed())

	result = v.VerifyFiles(m.Path(produced), m.Path(filepath.Join(dir, "missing")), false)
	assert.Error(t, result.Err)
	assert.False(t, result.Passed())
}

func TestUnifiedDiff(t *testing.T) {
	diff := UnifiedDiff([]string{"a", "b"}, []string{"a", "c"}, "before", "after")

	assert.Contains(t, diff, "--- before")
	assert.Contains(t, diff, "+++ after")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")
	assert.Empty(t, UnifiedDiff([]string{"a"}, []string{"a"}, "x", "y"))
}
