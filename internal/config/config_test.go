package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.InjectObjectWrap)
	assert.True(t, cfg.BackupOriginal)
	assert.Equal(t, ".v8tojsni.back", cfg.BackupSuffix)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v8tojsni.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inject_object_wrap: false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.InjectObjectWrap)
	assert.True(t, cfg.BackupOriginal)
	assert.Equal(t, DefaultBackupSuffix, cfg.BackupSuffix)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backup_original: [oops\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("empty suffix with backups", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suffix.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backup_suffix: \"\"\n"), 0o600))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrEmptyBackupSuffix)
	})
}

func TestWithHelpers_DoNotMutateReceiver(t *testing.T) {
	base := Default()

	noWrap := base.WithInjectObjectWrap(false)
	noBackup := base.WithBackup(false, "")

	assert.True(t, base.InjectObjectWrap)
	assert.True(t, base.BackupOriginal)
	assert.False(t, noWrap.InjectObjectWrap)
	assert.False(t, noBackup.BackupOriginal)
	require.NoError(t, noBackup.Validate())
}
