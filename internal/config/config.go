// Package config holds the immutable settings of a migration run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBackupSuffix is appended to the migrated file name to build the
// backup copy path.
const DefaultBackupSuffix = ".v8tojsni.back"

// Config is passed by value to the pipeline; nothing mutates it once built.
type Config struct {
	// InjectObjectWrap inserts the jsniObjectWrap adapter class before the
	// first class deriving from ObjectWrap. Use sites are rewritten either way.
	InjectObjectWrap bool `yaml:"inject_object_wrap"`

	// BackupOriginal copies the file before any stage runs.
	BackupOriginal bool   `yaml:"backup_original"`
	BackupSuffix   string `yaml:"backup_suffix"`
}

// Default returns the settings the tool ships with.
func Default() Config {
	return Config{
		InjectObjectWrap: true,
		BackupOriginal:   true,
		BackupSuffix:     DefaultBackupSuffix,
	}
}

// ErrEmptyBackupSuffix is returned when backups are enabled without a suffix,
// which would make the backup overwrite the original.
var ErrEmptyBackupSuffix = errors.New("backup suffix must not be empty when backups are enabled")

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.BackupOriginal && c.BackupSuffix == "" {
		return ErrEmptyBackupSuffix
	}

	return nil
}

// Load reads a YAML file on top of Default. An empty path yields Default.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// WithInjectObjectWrap returns a copy with InjectObjectWrap set.
func (c Config) WithInjectObjectWrap(inject bool) Config {
	c.InjectObjectWrap = inject
	return c
}

// WithBackup returns a copy with the backup settings replaced.
func (c Config) WithBackup(enabled bool, suffix string) Config {
	c.BackupOriginal = enabled
	c.BackupSuffix = suffix

	return c
}
