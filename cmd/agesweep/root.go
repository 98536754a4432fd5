package main

import (
	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/spf13/cobra"
)

// sweepFlags holds the root command flags. Flags override the config file.
type sweepFlags struct {
	configPath      string
	days            int
	dryRun          bool
	verbose         bool
	force           bool
	removeEmptyDirs bool
	roots           []string
	exclude         []string
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package variables.
func newRootCmd() *cobra.Command {
	flags := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "agesweep",
		Short: "Delete files older than N days",
		Long: `agesweep removes files whose modification time is older than a
threshold from a set of directories, such as Downloads and the Trash.
Desktop metadata files (.DS_Store, Icon, Thumbs.db) are never deleted.

Without --dry-run or --force it asks for confirmation before deleting.`,
		Example: `  agesweep --dry-run
  agesweep --days 30 --root ~/Downloads --force
  agesweep --remove-empty-dirs -v`,
		Args:    cobra.NoArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; later errors are not usage errors.
			cmd.SilenceUsage = true
			return runSweep(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default "+constants.DefaultConfigPath+")")
	f.IntVar(&flags.days, "days", constants.DefaultDays, "delete files older than this many days")
	f.BoolVar(&flags.dryRun, "dry-run", false, "list what would be deleted without deleting")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log every decision and show free space")
	f.BoolVarP(&flags.force, "force", "f", false, "do not ask for confirmation")
	f.BoolVar(&flags.removeEmptyDirs, "remove-empty-dirs", false, "remove directories left empty")
	f.StringArrayVar(&flags.roots, "root", nil, "directory to sweep, repeatable (replaces configured roots)")
	f.StringArrayVar(&flags.exclude, "exclude", nil, "extra base-name regex to never delete, repeatable")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
