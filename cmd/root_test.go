package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mouse-blink/v8tojsni/internal/config"
	"github.com/mouse-blink/v8tojsni/internal/domain"
	domainmocks "github.com/mouse-blink/v8tojsni/internal/domain/mocks"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// useWorkflow makes the next command run against wf and returns the
// configuration the command built.
func useWorkflow(t *testing.T, wf domain.Workflow) *config.Config {
	t.Helper()

	captured := &config.Config{}
	original := wire
	wire = func(_ *cobra.Command, cfg config.Config, _ *zap.Logger) domain.Workflow {
		*captured = cfg
		return wf
	}

	t.Cleanup(func() { wire = original })

	return captured
}

func newTestRootCmd(out *bytes.Buffer, args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newVerifyCmd(), newStagesCmd(), newPreviewCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd
}

func TestRootCmd_Migrate(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Migrate(domain.MigrateArgs{Path: m.Path("src/addon.cc")}).Return(nil)

	err := newTestRootCmd(&bytes.Buffer{}, "src/addon.cc").Execute()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), *cfg)
}

func TestRootCmd_MigrateFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Migrate(domain.MigrateArgs{
		Path:   m.Path("addon.cc"),
		DryRun: true,
		Report: m.Path("out/report.yaml"),
	}).Return(nil)

	err := newTestRootCmd(&bytes.Buffer{}, "--dry-run", "--report", "out/report.yaml", "addon.cc").Execute()
	require.NoError(t, err)
}

func TestRootCmd_MigrateError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	errBoom := errors.New("boom")
	mockWorkflow.EXPECT().Migrate(domain.MigrateArgs{Path: m.Path("addon.cc")}).Return(errBoom)

	err := newTestRootCmd(&bytes.Buffer{}, "addon.cc").Execute()
	require.ErrorIs(t, err, errBoom)
}

func TestRootCmd_WrongArgumentCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"a.cc", "b.cc"}} {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		useWorkflow(t, mockWorkflow)

		var out bytes.Buffer

		err := newTestRootCmd(&out, args...).Execute()
		require.NoError(t, err)

		assert.Equal(t, "# Usage:\n# v8tojsni $file\n", out.String())
	}
}

func TestRootCmd_ConfigOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.Config
	}{
		{
			name: "no backup",
			args: []string{"--no-backup"},
			want: config.Default().WithBackup(false, config.DefaultBackupSuffix),
		},
		{
			name: "no object wrap",
			args: []string{"--no-object-wrap"},
			want: config.Default().WithInjectObjectWrap(false),
		},
		{
			name: "backup suffix",
			args: []string{"--backup-suffix", ".orig"},
			want: config.Default().WithBackup(true, ".orig"),
		},
		{
			name: "empty suffix without backup",
			args: []string{"--no-backup", "--backup-suffix", ""},
			want: config.Default().WithBackup(false, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			cfg := useWorkflow(t, mockWorkflow)

			mockWorkflow.EXPECT().Migrate(domain.MigrateArgs{Path: m.Path("addon.cc")}).Return(nil)

			err := newTestRootCmd(&bytes.Buffer{}, append(tt.args, "addon.cc")...).Execute()
			require.NoError(t, err)

			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestRootCmd_EmptySuffixIsRejected(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	err := newTestRootCmd(&bytes.Buffer{}, "--backup-suffix", "", "addon.cc").Execute()
	require.ErrorIs(t, err, config.ErrEmptyBackupSuffix)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v8tojsni.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inject_object_wrap: false\nbackup_suffix: .pre-jsni\n"), 0o600))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Migrate(domain.MigrateArgs{Path: m.Path("addon.cc")}).Return(nil)

	err := newTestRootCmd(&bytes.Buffer{}, "--config", path, "addon.cc").Execute()
	require.NoError(t, err)

	assert.Equal(t, config.Config{InjectObjectWrap: false, BackupOriginal: true, BackupSuffix: ".pre-jsni"}, *cfg)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	err := newTestRootCmd(&bytes.Buffer{}, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "addon.cc").Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_MigratesFileEndToEnd(t *testing.T) {
	fixture := filepath.Join("..", "internal", "domain", "testdata", "addon.cc")

	src, err := os.ReadFile(fixture)
	require.NoError(t, err)

	golden, err := os.ReadFile(fixture + domain.GoldenSuffix)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "addon.cc")
	require.NoError(t, os.WriteFile(path, src, 0o600))

	var out bytes.Buffer

	err = newTestRootCmd(&out, "--backup-suffix", ".orig", path).Execute()
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(got))

	backup, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	assert.Equal(t, src, backup)

	assert.Contains(t, out.String(), "Migrated "+path)
	assert.Contains(t, out.String(), "Backup written to "+path+".orig")
}
