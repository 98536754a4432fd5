package cleanup

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/aatumaykin/agesweep/internal/logger"
)

// sweepRoot runs the file pass over one root.
func (rn *run) sweepRoot(ctx context.Context, root string) FolderResult {
	res := FolderResult{Root: root}

	files, err := rn.scanner.Scan(root, func(err error) {
		res.ScanErrors++
		rn.log.Warn("skipping unreadable path", logger.Field{Key: "error", Value: err})
	})
	if err != nil {
		res.Skipped = true
		res.SkipReason = skipReason(err)
		rn.log.Warn("skipping root", logger.Field{Key: "root", Value: root}, logger.Field{Key: "error", Value: err})
		return res
	}

	rn.log.Debug("sweeping root", logger.Field{Key: "root", Value: root})

	for c := range files {
		if ctx.Err() != nil {
			break
		}
		rn.consider(c, &res)
	}

	return res
}

// consider applies the filters to one candidate and acts on it. Exclusion is
// checked first so an excluded file is never deleted whatever its age.
func (rn *run) consider(c Candidate, res *FolderResult) {
	if _, done := rn.seen[c.Path]; done {
		return
	}

	if rn.excluder.Excluded(filepath.Base(c.Path)) {
		res.FilesExcluded++
		rn.log.Debug("excluded", logger.Field{Key: "path", Value: c.Path})
		return
	}

	if !Eligible(c.ModTime, rn.now, rn.opts.Days) {
		res.FilesKept++
		rn.log.Debug("kept, not old enough",
			logger.Field{Key: "path", Value: c.Path},
			logger.Field{Key: "modified", Value: c.ModTime})
		return
	}

	rn.seen[c.Path] = struct{}{}

	if rn.opts.DryRun {
		res.FilesMatched++
		res.BytesMatched += c.Size
		rn.report.DryRunFile(c.Path, c.Size)
		return
	}

	rn.deleteFile(c, res)
}

// deleteFile removes exactly one file. The size is read first because it is
// gone afterwards; if that read fails the file counts as zero bytes.
func (rn *run) deleteFile(c Candidate, res *FolderResult) {
	var size int64
	info, err := rn.lstat(c.Path)
	switch {
	case err != nil:
		rn.log.Warn("size unavailable, counting zero bytes",
			logger.Field{Key: "error", Value: &PathError{Kind: ErrSizeReadFailed, Path: c.Path, Err: err}})
	case !info.Mode().IsRegular():
		rn.log.Warn("no longer a regular file, leaving it", logger.Field{Key: "path", Value: c.Path})
		return
	default:
		size = info.Size()
	}

	if err := rn.remove(c.Path); err != nil {
		res.DeleteFailures++
		rn.log.Error("failed to delete file", &PathError{Kind: ErrDeleteFailed, Path: c.Path, Err: err})
		return
	}

	res.FilesDeleted++
	res.BytesDeleted += size
	rn.log.Debug("deleted file",
		logger.Field{Key: "path", Value: c.Path},
		logger.Field{Key: "size_bytes", Value: size})
}

func skipReason(err error) string {
	var pe *PathError
	if errors.As(err, &pe) && pe.Err != nil {
		if errors.Is(pe.Err, errNotDirectory) {
			return "not a directory"
		}
		if errors.Is(pe.Err, fs.ErrNotExist) {
			return "not found"
		}
		if errors.Is(pe.Err, fs.ErrPermission) {
			return "permission denied"
		}
	}
	return err.Error()
}
