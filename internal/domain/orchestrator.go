// Package domain runs the migration pipeline against files and checks its
// output against golden references.
package domain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	"github.com/mouse-blink/v8tojsni/internal/config"
	"github.com/mouse-blink/v8tojsni/internal/domain/rewrite"
	"github.com/mouse-blink/v8tojsni/internal/domain/stages"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// OriginalSnapshot names the snapshot holding the text before any stage ran.
const OriginalSnapshot = "original"

// Orchestrator owns the in-memory text of a file and threads it through the
// fixed stage pipeline.
type Orchestrator interface {
	// Migrate rewrites the file at path in place. With dryRun nothing is
	// written and no backup is taken; the migrated text is returned either way.
	Migrate(path m.Path, dryRun bool) (m.MigrationReport, m.WorkingFile, error)
	Transform(file m.WorkingFile) (m.WorkingFile, []m.StageReport)
	// Trace returns the original text followed by the text after every stage.
	Trace(file m.WorkingFile) []m.StageSnapshot
	Stages() []m.StageInfo
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	backups   adapter.BackupStore
	cfg       config.Config
	pipeline  []rewrite.Stage
	log       *zap.Logger
}

// NewOrchestrator constructs an Orchestrator for cfg. The pipeline is built
// once here; cfg is not consulted again except for the backup settings.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, backups adapter.BackupStore, cfg config.Config, log *zap.Logger) Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		backups:   backups,
		cfg:       cfg,
		pipeline:  stages.Pipeline(cfg),
		log:       log,
	}
}

func (o *orchestrator) Migrate(path m.Path, dryRun bool) (m.MigrationReport, m.WorkingFile, error) {
	info, err := o.fsAdapter.FileInfo(path)
	if err != nil {
		return m.MigrationReport{}, m.WorkingFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return m.MigrationReport{}, m.WorkingFile{}, fmt.Errorf("%s is a directory", path)
	}

	content, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return m.MigrationReport{}, m.WorkingFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	report := m.MigrationReport{Path: path, DryRun: dryRun}

	if o.cfg.BackupOriginal && !dryRun {
		backup, err := o.backups.Backup(path, o.cfg.BackupSuffix)
		if err != nil {
			return m.MigrationReport{}, m.WorkingFile{}, fmt.Errorf("failed to back up %s: %w", path, err)
		}

		report.Backup = backup
	}

	file := m.NewWorkingFile(path, content)
	out, stageReports := o.Transform(file)

	report.LinesBefore = len(file.Lines)
	report.LinesAfter = len(out.Lines)
	report.Stages = stageReports

	if !dryRun {
		if err := o.fsAdapter.WriteFile(path, out.Bytes(), info.Mode().Perm()); err != nil {
			return report, out, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	o.log.Info("migrated file",
		zap.String("path", string(path)),
		zap.Int("changes", report.TotalChanges()),
		zap.Int("lines_before", report.LinesBefore),
		zap.Int("lines_after", report.LinesAfter),
		zap.Bool("dry_run", dryRun),
	)

	return report, out, nil
}

func (o *orchestrator) Transform(file m.WorkingFile) (m.WorkingFile, []m.StageReport) {
	reports := make([]m.StageReport, 0, len(o.pipeline))
	lines := file.Lines

	for _, stage := range o.pipeline {
		before := len(lines)

		var changes int

		lines, changes = stage.Apply(lines)

		reports = append(reports, m.StageReport{
			Name:        stage.Name(),
			Changes:     changes,
			LinesBefore: before,
			LinesAfter:  len(lines),
		})

		o.log.Debug("stage applied",
			zap.String("path", string(file.Path)),
			zap.String("stage", stage.Name()),
			zap.Int("changes", changes),
			zap.Int("lines", len(lines)),
		)
	}

	out := file
	out.Lines = lines

	return out, reports
}

func (o *orchestrator) Trace(file m.WorkingFile) []m.StageSnapshot {
	snapshots := make([]m.StageSnapshot, 0, len(o.pipeline)+1)
	snapshots = append(snapshots, m.StageSnapshot{Name: OriginalSnapshot, Lines: file.Lines})

	lines := file.Lines

	for _, stage := range o.pipeline {
		before := lines

		var changes int

		lines, changes = stage.Apply(lines)

		snapshot := m.StageSnapshot{Name: stage.Name(), Changes: changes, Lines: lines}
		if changes > 0 {
			snapshot.Diff = UnifiedDiff(before, lines, "before "+stage.Name(), "after "+stage.Name())
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}

func (o *orchestrator) Stages() []m.StageInfo {
	infos := make([]m.StageInfo, 0, len(o.pipeline))

	for i, stage := range o.pipeline {
		rules, stable := rewrite.Describe(stage)
		infos = append(infos, m.StageInfo{
			Order:      i + 1,
			Name:       stage.Name(),
			Rules:      rules,
			LineStable: stable,
		})
	}

	return infos
}
