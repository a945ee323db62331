package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	adaptermocks "github.com/mouse-blink/v8tojsni/internal/adapter/mocks"
	"github.com/mouse-blink/v8tojsni/internal/config"
	controllermocks "github.com/mouse-blink/v8tojsni/internal/controller/mocks"
	"github.com/mouse-blink/v8tojsni/internal/domain"
	domainmocks "github.com/mouse-blink/v8tojsni/internal/domain/mocks"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

type workflowMocks struct {
	fs       *adaptermocks.MockSourceFSAdapter
	reports  *adaptermocks.MockReportStore
	ui       *controllermocks.MockUI
	orch     *domainmocks.MockOrchestrator
	verifier *domainmocks.MockVerifier
}

func newMockedWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:       adaptermocks.NewMockSourceFSAdapter(t),
		reports:  adaptermocks.NewMockReportStore(t),
		ui:       controllermocks.NewMockUI(t),
		orch:     domainmocks.NewMockOrchestrator(t),
		verifier: domainmocks.NewMockVerifier(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.reports, mocks.ui, mocks.orch, mocks.verifier, nil)

	return wf, mocks
}

func TestWorkflow_Migrate(t *testing.T) {
	report := m.MigrationReport{Path: "addon.cc", Stages: []m.StageReport{{Name: "context", Changes: 2}}}
	out := m.NewWorkingFile("addon.cc", []byte("Isolate* env;\n"))

	t.Run("writes report and shows summary", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.orch.EXPECT().Migrate(m.Path("addon.cc"), false).Return(report, out, nil)
		mocks.reports.EXPECT().SaveReport(m.Path("report.yaml"), report).Return(nil)
		mocks.ui.EXPECT().DisplayMigration(report).Return(nil)

		err := wf.Migrate(domain.MigrateArgs{Path: "addon.cc", Report: "report.yaml"})
		require.NoError(t, err)
	})

	t.Run("dry run prints the text", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.orch.EXPECT().Migrate(m.Path("addon.cc"), true).Return(report, out, nil)
		mocks.ui.EXPECT().DisplayDryRun(out).Return(nil)
		mocks.ui.EXPECT().DisplayMigration(report).Return(nil)

		err := wf.Migrate(domain.MigrateArgs{Path: "addon.cc", DryRun: true})
		require.NoError(t, err)
	})

	t.Run("orchestrator failure skips the UI", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		errBoom := errors.New("boom")

		mocks.orch.EXPECT().Migrate(m.Path("addon.cc"), false).Return(m.MigrationReport{}, m.WorkingFile{}, errBoom)

		err := wf.Migrate(domain.MigrateArgs{Path: "addon.cc"})
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("report failure", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		errBoom := errors.New("disk full")

		mocks.orch.EXPECT().Migrate(m.Path("addon.cc"), false).Return(report, out, nil)
		mocks.reports.EXPECT().SaveReport(m.Path("report.yaml"), report).Return(errBoom)

		err := wf.Migrate(domain.MigrateArgs{Path: "addon.cc", Report: "report.yaml"})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestWorkflow_VerifyPair(t *testing.T) {
	t.Run("passing pair", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		result := m.VerificationResult{Produced: "a.cc", Golden: "a.cc.golden"}

		mocks.verifier.EXPECT().VerifyFiles(m.Path("a.cc"), m.Path("a.cc.golden"), true).Return(result)
		mocks.ui.EXPECT().DisplayVerification([]m.VerificationResult{result}).Return(nil)

		err := wf.Verify(context.Background(), domain.VerifyArgs{Produced: "a.cc", Golden: "a.cc.golden", Diff: true})
		require.NoError(t, err)
	})

	t.Run("mismatch fails", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		result := m.VerificationResult{
			Produced: "a.cc",
			Golden:   "a.cc.golden",
			Mismatch: &m.LineMismatch{Line: 4, Produced: "x", Golden: "y"},
		}

		mocks.verifier.EXPECT().VerifyFiles(m.Path("a.cc"), m.Path("a.cc.golden"), false).Return(result)
		mocks.ui.EXPECT().DisplayVerification([]m.VerificationResult{result}).Return(nil)

		err := wf.Verify(context.Background(), domain.VerifyArgs{Produced: "a.cc", Golden: "a.cc.golden"})
		require.ErrorIs(t, err, domain.ErrVerificationFailed)
		assert.Contains(t, err.Error(), "line 4")
	})

	t.Run("missing arguments", func(t *testing.T) {
		wf, _ := newMockedWorkflow(t)

		err := wf.Verify(context.Background(), domain.VerifyArgs{Produced: "a.cc"})
		require.Error(t, err)
	})
}

func TestWorkflow_VerifyFixtures(t *testing.T) {
	t.Run("checks every fixture and skips golden files", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.fs.EXPECT().FindFiles(m.Path("fixtures"), domain.DefaultFixturePattern, false).
			Return([]m.Path{"fixtures/a.cc", "fixtures/a.cc.golden", "fixtures/b.cc"}, nil)
		mocks.verifier.EXPECT().VerifyFixture(m.Path("fixtures/a.cc"), false).
			Return(m.VerificationResult{Produced: "fixtures/a.cc"})
		mocks.verifier.EXPECT().VerifyFixture(m.Path("fixtures/b.cc"), false).
			Return(m.VerificationResult{Produced: "fixtures/b.cc"})
		mocks.ui.EXPECT().DisplayVerification(mock.MatchedBy(func(results []m.VerificationResult) bool {
			return len(results) == 2 &&
				results[0].Produced == "fixtures/a.cc" &&
				results[1].Produced == "fixtures/b.cc"
		})).Return(nil)

		err := wf.Verify(context.Background(), domain.VerifyArgs{Fixtures: "fixtures", Parallel: 2})
		require.NoError(t, err)
	})

	t.Run("custom pattern without matches", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.fs.EXPECT().FindFiles(m.Path("fixtures"), "*.cpp", true).Return(nil, nil)

		err := wf.Verify(context.Background(), domain.VerifyArgs{Fixtures: "fixtures", Pattern: "*.cpp", Recursive: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no fixtures")
	})

	t.Run("cancelled context", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mocks.fs.EXPECT().FindFiles(m.Path("fixtures"), domain.DefaultFixturePattern, false).
			Return([]m.Path{"fixtures/a.cc"}, nil)

		err := wf.Verify(ctx, domain.VerifyArgs{Fixtures: "fixtures"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkflow_VerifyFixtures_OnDisk(t *testing.T) {
	fs := adapter.NewLocalSourceFSAdapter()
	orch := domain.NewOrchestrator(fs, adapter.NewLocalBackupStore(fs), config.Default(), nil)
	ui := controllermocks.NewMockUI(t)

	ui.EXPECT().DisplayVerification(mock.MatchedBy(func(results []m.VerificationResult) bool {
		return len(results) == 1 && results[0].Passed()
	})).Return(nil)

	wf := domain.NewWorkflow(fs, adapter.NewReportStore(), ui, orch, domain.NewVerifier(fs, orch), nil)

	err := wf.Verify(context.Background(), domain.VerifyArgs{Fixtures: "testdata", Parallel: 4})
	require.NoError(t, err)
}

func TestWorkflow_Stages(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	infos := []m.StageInfo{{Order: 1, Name: "declarations", Rules: 2, LineStable: true}}

	mocks.orch.EXPECT().Stages().Return(infos)
	mocks.ui.EXPECT().DisplayStages(infos).Return(nil)

	require.NoError(t, wf.Stages())
}

func TestWorkflow_Preview(t *testing.T) {
	t.Run("traces the file", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		content := []byte("Isolate* isolate;\n")
		snapshots := []m.StageSnapshot{{Name: domain.OriginalSnapshot, Lines: []string{"Isolate* isolate;"}}}

		mocks.fs.EXPECT().ReadFile(m.Path("addon.cc")).Return(content, nil)
		mocks.orch.EXPECT().Trace(m.NewWorkingFile("addon.cc", content)).Return(snapshots)
		mocks.ui.EXPECT().DisplayPreview(m.Path("addon.cc"), snapshots).Return(nil)

		require.NoError(t, wf.Preview(domain.PreviewArgs{Path: "addon.cc"}))
	})

	t.Run("unreadable file", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.fs.EXPECT().ReadFile(m.Path("addon.cc")).Return(nil, os.ErrNotExist)

		err := wf.Preview(domain.PreviewArgs{Path: "addon.cc"})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestVerifier_VerifyFixture_UsesOrchestrator(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	orch := domainmocks.NewMockOrchestrator(t)

	fs.EXPECT().ReadFile(m.Path("f.cc")).Return([]byte("in\n"), nil)
	fs.EXPECT().ReadFile(m.Path("f.cc.golden")).Return([]byte("out\n"), nil)
	orch.EXPECT().Transform(m.NewWorkingFile("f.cc", []byte("in\n"))).
		Return(m.NewWorkingFile("f.cc", []byte("out\n")), nil)

	result := domain.NewVerifier(fs, orch).VerifyFixture("f.cc", false)

	assert.True(t, result.Passed())
	assert.Equal(t, m.Path("f.cc.golden"), result.Golden)
}

func TestWorkflow_MigrateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("testdata", "addon.cc"))
	require.NoError(t, err)

	path := filepath.Join(dir, "addon.cc")
	require.NoError(t, os.WriteFile(path, src, 0o600))

	fs := adapter.NewLocalSourceFSAdapter()
	store := adapter.NewReportStore()
	orch := domain.NewOrchestrator(fs, adapter.NewLocalBackupStore(fs), config.Default(), nil)
	ui := controllermocks.NewMockUI(t)

	ui.EXPECT().DisplayMigration(mock.AnythingOfType("model.MigrationReport")).Return(nil)

	wf := domain.NewWorkflow(fs, store, ui, orch, domain.NewVerifier(fs, orch), nil)
	reportPath := filepath.Join(dir, "reports", "addon.yaml")

	require.NoError(t, wf.Migrate(domain.MigrateArgs{Path: m.Path(path), Report: m.Path(reportPath)}))

	saved, err := store.LoadReport(m.Path(reportPath))
	require.NoError(t, err)
	assert.Equal(t, m.Path(path), saved.Path)
	assert.Equal(t, m.Path(path+config.DefaultBackupSuffix), saved.Backup)
	assert.Len(t, saved.Stages, 20)
}
