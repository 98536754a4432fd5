// Package cleanup sweeps directory trees for files older than an age
// threshold. It deletes or reports them, then optionally prunes the
// directories left empty.
package cleanup

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/aatumaykin/agesweep/internal/logger"
	"github.com/google/uuid"
)

// Runner executes cleanup runs for one set of Options.
type Runner struct {
	opts      Options
	excluder  *Excluder
	protector *Protector
	scanner   *Scanner
	report    *Reporter
	confirm   ConfirmFunc
	logger    *logger.Logger

	now      func() time.Time
	newRunID func() string
	lstat    func(string) (fs.FileInfo, error)
	remove   func(string) error
}

// NewRunner validates opts and prepares a runner. The built-in exclude
// patterns always apply; opts.Exclude adds to them. Reports and the summary go
// to out. A nil confirm declines every live run that is not forced.
func NewRunner(opts Options, confirm ConfirmFunc, out io.Writer, log *logger.Logger) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	excluder, err := NewExcluder(append(constants.DefaultExcludePatterns(), opts.Exclude...))
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Discard()
	}
	if out == nil {
		out = io.Discard
	}

	protector := NewProtector(opts.Protect)

	return &Runner{
		opts:      opts,
		excluder:  excluder,
		protector: protector,
		scanner:   NewScanner(protector),
		report:    NewReporter(out, opts.Verbose),
		confirm:   confirm,
		logger:    log,
		now:       time.Now,
		newRunID:  uuid.NewString,
		lstat:     os.Lstat,
		remove:    os.Remove,
	}, nil
}

// run carries the per-call state of Runner.Run.
type run struct {
	*Runner
	log   *logger.Logger
	now   time.Time
	seen  map[string]struct{}
	roots map[string]struct{} // resolved roots, never pruned
}

// Run performs one sweep: confirmation, the file pass over every root in
// order, then the empty-directory pass if enabled. Per-item failures are
// logged and counted, never returned. The only errors returned come from ctx
// or the confirmation prompt; partial stats are returned with them.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	started := r.now()
	runID := r.newRunID()
	rn := &run{
		Runner: r,
		log:    r.logger.With(logger.Field{Key: "run_id", Value: runID}),
		now:    started,
		seen:   make(map[string]struct{}),
		roots:  resolvedRoots(r.opts.Roots),
	}

	if !r.opts.DryRun && !r.opts.Force {
		ok, err := r.ask(ctx)
		if err != nil {
			return Stats{RunID: runID, Declined: true}, fmt.Errorf("confirmation: %w", err)
		}
		if !ok {
			rn.log.Info("run declined at confirmation prompt")
			r.report.Declined()
			return Stats{RunID: runID, Declined: true}, nil
		}
	}

	rn.log.Info("sweep started",
		logger.Field{Key: "days", Value: r.opts.Days},
		logger.Field{Key: "dry_run", Value: r.opts.DryRun},
		logger.Field{Key: "roots", Value: r.opts.Roots})

	folders := make([]FolderResult, 0, len(r.opts.Roots))
	for _, root := range r.opts.Roots {
		if ctx.Err() != nil {
			break
		}
		folders = append(folders, rn.sweepRoot(ctx, root))
	}

	if r.opts.RemoveEmptyDirs {
		for i := range folders {
			if folders[i].Skipped || ctx.Err() != nil {
				continue
			}
			rn.pruneRoot(ctx, &folders[i])
		}
	}

	stats := Aggregate(folders)
	stats.RunID = runID
	stats.DryRun = r.opts.DryRun
	stats.EmptyDirPass = r.opts.RemoveEmptyDirs
	stats.Duration = r.now().Sub(started)

	r.report.Summary(stats)

	rn.log.Info("sweep finished",
		logger.Field{Key: "files_deleted", Value: stats.TotalFilesDeleted},
		logger.Field{Key: "bytes_deleted", Value: stats.TotalBytesDeleted},
		logger.Field{Key: "empty_dirs_deleted", Value: stats.EmptyDirsDeleted},
		logger.Field{Key: "dry_run_files", Value: stats.DryRunFiles},
		logger.Field{Key: "delete_failures", Value: stats.DeleteFailures},
		logger.Field{Key: "duration_ms", Value: stats.Duration.Milliseconds()})

	return stats, ctx.Err()
}

// resolvedRoots returns the set of roots in the form the walks produce them.
func resolvedRoots(roots []string) map[string]struct{} {
	set := make(map[string]struct{}, len(roots))
	for _, root := range roots {
		set[filepath.Clean(root)] = struct{}{}
		if resolved, err := resolveRoot(root); err == nil {
			set[filepath.Clean(resolved)] = struct{}{}
		}
	}
	return set
}

func (r *Runner) ask(ctx context.Context) (bool, error) {
	if r.confirm == nil {
		return false, nil
	}
	return r.confirm(ctx, fmt.Sprintf(constants.MsgConfirmPrompt, r.opts.Days, len(r.opts.Roots)))
}

// Aggregate sums per-root results into run totals.
func Aggregate(folders []FolderResult) Stats {
	stats := Stats{Folders: folders}
	for _, f := range folders {
		if f.Skipped {
			stats.RootsSkipped++
		}
		stats.TotalFilesDeleted += f.FilesDeleted
		stats.TotalBytesDeleted += f.BytesDeleted
		stats.EmptyDirsDeleted += f.EmptyDirsDeleted
		stats.DryRunFiles += f.FilesMatched
		stats.DryRunBytes += f.BytesMatched
		stats.DryRunEmptyDirs += f.EmptyDirsMatched
		stats.DeleteFailures += f.DeleteFailures
		stats.ScanErrors += f.ScanErrors
	}
	return stats
}
