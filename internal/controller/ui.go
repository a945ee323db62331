// Package controller provides output adapters for displaying migration
// results.
package controller

import (
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// UI defines how the results of every command are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayMigration summarises a migrated file.
	DisplayMigration(report m.MigrationReport) error
	// DisplayDryRun prints the migrated text of a file that was not written.
	DisplayDryRun(file m.WorkingFile) error
	// DisplayVerification reports every compared pair.
	DisplayVerification(results []m.VerificationResult) error
	// DisplayStages lists the pipeline.
	DisplayStages(stages []m.StageInfo) error
	// DisplayPreview walks through the snapshots of a traced migration.
	DisplayPreview(path m.Path, snapshots []m.StageSnapshot) error
}
