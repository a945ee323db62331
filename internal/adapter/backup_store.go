package adapter

import (
	"fmt"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// BackupStore keeps an untouched copy of a file before it is migrated.
type BackupStore interface {
	// Backup copies path to path+suffix and returns the copy's path.
	Backup(path m.Path, suffix string) (m.Path, error)
}

// LocalBackupStore writes backups next to the original through a
// SourceFSAdapter.
type LocalBackupStore struct {
	fs SourceFSAdapter
}

// NewLocalBackupStore constructs a LocalBackupStore on top of fs.
func NewLocalBackupStore(fs SourceFSAdapter) *LocalBackupStore {
	return &LocalBackupStore{fs: fs}
}

// Backup copies the file byte for byte, keeping its permissions. An existing
// backup is overwritten.
func (s *LocalBackupStore) Backup(path m.Path, suffix string) (m.Path, error) {
	if suffix == "" {
		return "", fmt.Errorf("failed to back up %s: empty suffix", path)
	}

	info, err := s.fs.FileInfo(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	target := path + m.Path(suffix)
	if err := s.fs.WriteFile(target, content, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", target, err)
	}

	return target, nil
}
