package cleanup

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aatumaykin/agesweep/internal/logger"
)

// pruneRoot removes directories left empty under one root. Configured roots,
// including ones nested below this root, are kept.
func (rn *run) pruneRoot(ctx context.Context, res *FolderResult) {
	root, err := resolveRoot(res.Root)
	if err != nil {
		rn.log.Warn("skipping empty-directory pass", logger.Field{Key: "root", Value: res.Root}, logger.Field{Key: "error", Value: err})
		return
	}
	if rn.protector.Protected(root) {
		return
	}
	rn.pruneDir(ctx, root, res)
}

// pruneDir walks dir bottom-up and reports whether dir itself was removed.
// A directory is removed only when every entry it held at listing time has
// been removed by this pass, so emptiness cascades upward within one walk.
// In dry-run nothing is removed, so only directories empty at the start are
// reported and nothing cascades.
func (rn *run) pruneDir(ctx context.Context, dir string, res *FolderResult) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		res.ScanErrors++
		rn.log.Warn("skipping unreadable directory",
			logger.Field{Key: "error", Value: &PathError{Kind: ErrScanPermissionDenied, Path: dir, Err: err}})
		return false
	}

	live := len(entries)
	for _, entry := range entries {
		if ctx.Err() != nil {
			return false
		}
		// Type() carries no ModeDir for symlinks, so links are never entered.
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(dir, entry.Name())
		if rn.protector.Protected(child) {
			continue
		}
		if rn.pruneDir(ctx, child, res) {
			live--
		}
	}

	if _, isRoot := rn.roots[filepath.Clean(dir)]; isRoot || live > 0 {
		return false
	}

	if rn.opts.DryRun {
		res.EmptyDirsMatched++
		rn.report.DryRunDir(dir)
		return false
	}

	if err := rn.remove(dir); err != nil {
		res.DeleteFailures++
		rn.log.Error("failed to remove empty directory", &PathError{Kind: ErrDeleteFailed, Path: dir, Err: err})
		return false
	}

	res.EmptyDirsDeleted++
	rn.log.Debug("removed empty directory", logger.Field{Key: "path", Value: dir})
	return true
}
