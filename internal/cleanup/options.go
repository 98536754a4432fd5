package cleanup

import (
	"fmt"
	"path/filepath"

	"github.com/aatumaykin/agesweep/internal/constants"
)

// Validate rejects options that must never reach the filesystem.
func (o Options) Validate() error {
	if o.Days < 0 {
		return fmt.Errorf("%w: days must be >= 0, got %d", ErrInvalidArgument, o.Days)
	}
	if o.Days > constants.MaxDays {
		return fmt.Errorf("%w: days must be <= %d, got %d", ErrInvalidArgument, constants.MaxDays, o.Days)
	}

	for _, root := range o.Roots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("%w: root %q is not an absolute path", ErrInvalidArgument, root)
		}
	}

	return nil
}
