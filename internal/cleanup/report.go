package cleanup

import (
	"fmt"
	"io"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/disk"
)

// Reporter prints dry-run lines and the run summary.
type Reporter struct {
	out       io.Writer
	verbose   bool
	freeSpace func(path string) (uint64, error)
}

func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose, freeSpace: diskFree}
}

func diskFree(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// FormatSize renders n bytes in binary units (KiB, MiB...).
func FormatSize(n int64) string {
	return units.BytesSize(float64(n))
}

func (r *Reporter) DryRunFile(path string, size int64) {
	fmt.Fprintf(r.out, constants.MsgDryRunFile, path, FormatSize(size))
}

func (r *Reporter) DryRunDir(path string) {
	fmt.Fprintf(r.out, constants.MsgDryRunDir, path)
}

func (r *Reporter) Declined() {
	fmt.Fprintln(r.out, constants.MsgDeclined)
}

// Summary prints the per-root breakdown and totals of a finished run.
func (r *Reporter) Summary(s Stats) {
	if s.DryRun {
		fmt.Fprintln(r.out, constants.MsgSummaryHeaderDryRun)
	} else {
		fmt.Fprintln(r.out, constants.MsgSummaryHeaderLive)
	}

	for _, f := range s.Folders {
		if f.Skipped {
			fmt.Fprintf(r.out, constants.MsgSummaryRootSkipped, f.Root, f.SkipReason)
			continue
		}
		if s.DryRun {
			fmt.Fprintf(r.out, constants.MsgSummaryRoot, f.Root, f.FilesMatched, FormatSize(f.BytesMatched))
		} else {
			fmt.Fprintf(r.out, constants.MsgSummaryRoot, f.Root, f.FilesDeleted, FormatSize(f.BytesDeleted))
		}
		if r.verbose {
			if free, err := r.freeSpace(f.Root); err == nil {
				fmt.Fprintf(r.out, constants.MsgSummaryFreeSpace, f.Root, FormatSize(int64(free)))
			}
		}
	}

	if s.DryRun {
		fmt.Fprintf(r.out, constants.MsgSummaryDryRunFiles, s.DryRunFiles, FormatSize(s.DryRunBytes))
	} else {
		fmt.Fprintf(r.out, constants.MsgSummaryDeleted, s.TotalFilesDeleted, FormatSize(s.TotalBytesDeleted))
	}

	if s.EmptyDirPass {
		if s.DryRun {
			fmt.Fprintf(r.out, constants.MsgSummaryDryRunDirs, s.DryRunEmptyDirs)
		} else {
			fmt.Fprintf(r.out, constants.MsgSummaryEmptyDirs, s.EmptyDirsDeleted)
		}
	}

	if s.DeleteFailures > 0 || s.ScanErrors > 0 {
		fmt.Fprintf(r.out, constants.MsgSummaryFailures, s.DeleteFailures, s.ScanErrors)
	}
}
