package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	"github.com/mouse-blink/v8tojsni/internal/controller"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

// DefaultFixturePattern selects fixtures when VerifyArgs.Pattern is empty.
const DefaultFixturePattern = "*.cc"

// MigrateArgs contains the arguments for migrating one file.
type MigrateArgs struct {
	Path   m.Path
	DryRun bool
	// Report, when set, is where the YAML migration report is written.
	Report m.Path
}

// VerifyArgs selects either one produced/golden pair or a fixture directory.
type VerifyArgs struct {
	Produced m.Path
	Golden   m.Path

	Fixtures  m.Path
	Pattern   string
	Recursive bool
	Parallel  int

	Diff bool
}

// PreviewArgs contains the arguments for previewing a migration.
type PreviewArgs struct {
	Path m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Migrate(args MigrateArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Stages() error
	Preview(args PreviewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator
	verifier    Verifier
	log         *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
	verifier Verifier,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		orch:        orch,
		verifier:    verifier,
		log:         log,
	}
}

func (w *workflow) Migrate(args MigrateArgs) error {
	report, out, err := w.orch.Migrate(args.Path, args.DryRun)
	if err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		w.log.Debug("report saved", zap.String("report", string(args.Report)))
	}

	if args.DryRun {
		if err := w.ui.DisplayDryRun(out); err != nil {
			return err
		}
	}

	return w.ui.DisplayMigration(report)
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	var (
		results []m.VerificationResult
		err     error
	)

	if args.Fixtures != "" {
		results, err = w.verifyFixtures(ctx, args)
		if err != nil {
			return err
		}
	} else {
		if args.Produced == "" || args.Golden == "" {
			return fmt.Errorf("verify needs a produced and a golden file, or a fixture directory")
		}

		results = []m.VerificationResult{w.verifier.VerifyFiles(args.Produced, args.Golden, args.Diff)}
	}

	if err := w.ui.DisplayVerification(results); err != nil {
		return err
	}

	for _, result := range results {
		if !result.Passed() {
			return fmt.Errorf("%w:\n%s", ErrVerificationFailed, summarize(results))
		}
	}

	return nil
}

// verifyFixtures checks fixtures concurrently, at most args.Parallel at a
// time. Each goroutine writes only its own result slot.
func (w *workflow) verifyFixtures(ctx context.Context, args VerifyArgs) ([]m.VerificationResult, error) {
	pattern := args.Pattern
	if pattern == "" {
		pattern = DefaultFixturePattern
	}

	found, err := w.fsAdapter.FindFiles(args.Fixtures, pattern, args.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to find fixtures: %w", err)
	}

	fixtures := make([]m.Path, 0, len(found))
	for _, path := range found {
		if strings.HasSuffix(string(path), GoldenSuffix) {
			continue
		}

		fixtures = append(fixtures, path)
	}

	if len(fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures matching %q in %s", pattern, args.Fixtures)
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]m.VerificationResult, len(fixtures))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, fixture := range fixtures {
		i, fixture := i, fixture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = w.verifier.VerifyFixture(fixture, args.Diff)

			w.log.Debug("fixture verified",
				zap.String("fixture", filepath.Base(string(fixture))),
				zap.Bool("passed", results[i].Passed()),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fixture verification interrupted: %w", err)
	}

	return results, nil
}

func (w *workflow) Stages() error {
	return w.ui.DisplayStages(w.orch.Stages())
}

func (w *workflow) Preview(args PreviewArgs) error {
	content, err := w.fsAdapter.ReadFile(args.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args.Path, err)
	}

	snapshots := w.orch.Trace(m.NewWorkingFile(args.Path, content))

	return w.ui.DisplayPreview(args.Path, snapshots)
}
