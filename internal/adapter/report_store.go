package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// ReportStore persists and retrieves migration reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.MigrationReport) error
	LoadReport(path m.Path) (m.MigrationReport, error)
}

// LocalReportStore writes reports as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path, creating missing parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.MigrationReport) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.MigrationReport, error) {
	// #nosec G304 - path is the user-chosen report file
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.MigrationReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.MigrationReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.MigrationReport{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return report, nil
}
