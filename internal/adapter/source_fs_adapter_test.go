package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "addon.cc"), "int x;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.cc"), "int y;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.cc")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "addon.cc")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "addon.cc"), "int x;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.cc")
		writeTestFile(t, child, "int y;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "addon.cc")
	content := "#include <node.h>\n" + "void Init() {}\n"

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte(content), 0o640))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	assert.False(t, info.IsDir())
}

func TestLocalSourceFSAdapter_FileInfo_Missing(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.FileInfo(m.Path(filepath.Join(t.TempDir(), "missing.cc")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_FindFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.cc"), "")
	writeTestFile(t, filepath.Join(root, "a.cc"), "")
	writeTestFile(t, filepath.Join(root, "a.cc.golden"), "")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "")
	mustMkdir(t, filepath.Join(root, "sub"))
	writeTestFile(t, filepath.Join(root, "sub", "c.cc"), "")

	tests := []struct {
		name      string
		pattern   string
		recursive bool
		want      []string
	}{
		{
			name:    "top level only",
			pattern: "*.cc",
			want:    []string{"a.cc", "b.cc"},
		},
		{
			name:      "recursive",
			pattern:   "*.cc",
			recursive: true,
			want:      []string{"a.cc", "b.cc", filepath.Join("sub", "c.cc")},
		},
		{
			name:    "alternatives",
			pattern: "*.{cc,golden}",
			want:    []string{"a.cc", "a.cc.golden", "b.cc"},
		},
		{
			name:    "no match",
			pattern: "*.cpp",
			want:    nil,
		},
	}

	adapter := NewLocalSourceFSAdapter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.FindFiles(m.Path(root), tt.pattern, tt.recursive)
			require.NoError(t, err)

			var want []m.Path
			for _, rel := range tt.want {
				want = append(want, m.Path(filepath.Join(root, rel)))
			}

			assert.Equal(t, want, got)
		})
	}
}

func TestLocalSourceFSAdapter_FindFiles_Errors(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.FindFiles(m.Path(t.TempDir()), "[", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")

	_, err = adapter.FindFiles(m.Path(filepath.Join(t.TempDir(), "missing")), "*.cc", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	assert.Equal(t, m.Path(filepath.Join("src", "addon.cc")), adapter.JoinPath("src", "addon.cc"))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func containsPath(paths []string, target string) bool {
	for _, path := range paths {
		if path == target {
			return true
		}
	}

	return false
}
