package cleanup

import (
	"errors"
	"fmt"
)

// Error kinds. Only ErrInvalidArgument aborts a run; the rest are reported
// where they happen and the run continues.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrRootNotFound         = errors.New("root not found")
	ErrScanPermissionDenied = errors.New("cannot read directory")
	ErrDeleteFailed         = errors.New("delete failed")
	ErrSizeReadFailed       = errors.New("size unavailable")
)

var errNotDirectory = errors.New("not a directory")

// PathError ties an error kind to the path it happened on.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
