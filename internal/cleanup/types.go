package cleanup

import (
	"context"
	"time"
)

// Options is the configuration of one run. It is built once and never mutated.
type Options struct {
	Days            int      // files must be strictly older than this many days
	DryRun          bool     // report instead of delete
	Verbose         bool     // add free-space lines to the summary
	Force           bool     // skip the confirmation prompt
	RemoveEmptyDirs bool     // prune empty directories after the file pass
	Roots           []string // absolute paths, swept in order
	Exclude         []string // extra regular expressions matched against base names
	Protect         []string // wildcard patterns matched against full paths
}

// Candidate is a regular file found under a root.
type Candidate struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// FolderResult accumulates the outcome of one root.
type FolderResult struct {
	Root       string
	Skipped    bool
	SkipReason string

	FilesDeleted int
	BytesDeleted int64
	FilesMatched int // dry-run targets
	BytesMatched int64

	FilesExcluded int
	FilesKept     int // not old enough

	EmptyDirsDeleted int
	EmptyDirsMatched int // dry-run targets

	DeleteFailures int
	ScanErrors     int
}

// Stats holds the totals of a cleanup run.
type Stats struct {
	RunID        string
	DryRun       bool
	Declined     bool
	EmptyDirPass bool
	Folders      []FolderResult

	TotalFilesDeleted int
	TotalBytesDeleted int64
	EmptyDirsDeleted  int

	DryRunFiles     int
	DryRunBytes     int64
	DryRunEmptyDirs int

	DeleteFailures int
	ScanErrors     int
	RootsSkipped   int

	Duration time.Duration
}

// ConfirmFunc asks the user to approve a live run before anything is deleted.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)
