package model

// StageReport records what one pipeline stage did to a file.
type StageReport struct {
	Name        string `yaml:"name"`
	Changes     int    `yaml:"changes"`
	LinesBefore int    `yaml:"lines_before"`
	LinesAfter  int    `yaml:"lines_after"`
}

// StageSnapshot is the full text of a file right after a stage ran.
type StageSnapshot struct {
	Name    string
	Changes int
	Lines   []string
	Diff    string // unified diff against the previous snapshot
}

// StageInfo describes a pipeline stage without running it.
type StageInfo struct {
	Order      int
	Name       string
	Rules      int
	LineStable bool // true if the stage never adds or removes lines
}

// MigrationReport holds the outcome of migrating a single file.
type MigrationReport struct {
	Path        Path          `yaml:"path"`
	Backup      Path          `yaml:"backup,omitempty"`
	DryRun      bool          `yaml:"dry_run"`
	LinesBefore int           `yaml:"lines_before"`
	LinesAfter  int           `yaml:"lines_after"`
	Stages      []StageReport `yaml:"stages"`
}

// TotalChanges sums the edits of every stage.
func (r MigrationReport) TotalChanges() int {
	total := 0
	for _, stage := range r.Stages {
		total += stage.Changes
	}

	return total
}

// LineMismatch names the first difference between a produced file and its
// golden reference. Line is one-based; zero means the line counts differ.
type LineMismatch struct {
	Line          int
	Produced      string
	Golden        string
	ProducedCount int
	GoldenCount   int
}

// VerificationResult is the outcome of comparing one produced file against
// its golden reference.
type VerificationResult struct {
	Produced Path
	Golden   Path
	Mismatch *LineMismatch
	Diff     string // unified diff, only filled on request
	Err      error  // error reading either side (not a mismatch)
}

// Passed reports whether the pair matched without errors.
func (r VerificationResult) Passed() bool {
	return r.Err == nil && r.Mismatch == nil
}
