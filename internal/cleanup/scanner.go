package cleanup

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Scanner enumerates regular files below a root. Symlinks are never followed,
// and directories, devices and sockets are never yielded.
type Scanner struct {
	protect *Protector
}

func NewScanner(protect *Protector) *Scanner {
	if protect == nil {
		protect = NewProtector(nil)
	}
	return &Scanner{protect: protect}
}

// Scan checks root and returns a lazy walk over its files. A missing root is
// reported as ErrRootNotFound before any walking starts. Unreadable subtrees
// are passed to onError as ErrScanPermissionDenied and skipped. Each range
// over the sequence walks the tree again.
func (s *Scanner) Scan(root string, onError func(error)) (iter.Seq[Candidate], error) {
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}
	if onError == nil {
		onError = func(error) {}
	}

	return func(yield func(Candidate) bool) {
		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				onError(&PathError{Kind: ErrScanPermissionDenied, Path: path, Err: err})
				return nil
			}

			if s.protect.Protected(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				// Vanished or unreadable between listing and stat; nothing to classify.
				onError(&PathError{Kind: ErrSizeReadFailed, Path: path, Err: err})
				return nil
			}

			if !yield(Candidate{Path: path, Size: info.Size(), ModTime: info.ModTime()}) {
				return filepath.SkipAll
			}
			return nil
		})
	}, nil
}

// resolveRoot checks that root is a directory. A root that is itself a
// symlink to a directory is resolved so the walk enters it; links below the
// root are still never followed.
func resolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", &PathError{Kind: ErrRootNotFound, Path: root, Err: err}
	}
	if !info.IsDir() {
		return "", &PathError{Kind: ErrRootNotFound, Path: root, Err: errNotDirectory}
	}

	linfo, err := os.Lstat(root)
	if err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			return resolved, nil
		}
	}
	return root, nil
}
