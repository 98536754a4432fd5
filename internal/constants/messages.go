package constants

// Prompt and run messages
const (
	// MsgConfirmPrompt asks before a live run. Arguments: days, root count.
	MsgConfirmPrompt = "Delete files older than %d days under %d root(s)? [y/N] "

	// MsgDeclined is printed when the confirmation is not affirmative.
	MsgDeclined = "Aborted, nothing was deleted."

	// MsgNotTerminal explains why a live run without --force was declined.
	MsgNotTerminal = "stdin is not a terminal; pass --force to run without confirmation"

	// MsgInterrupted is printed when a signal stops the run early.
	MsgInterrupted = "Interrupted, files already deleted stay deleted."
)

// Summary messages
const (
	// MsgSummaryHeaderLive heads the summary of a live run.
	MsgSummaryHeaderLive = "== agesweep summary =="

	// MsgSummaryHeaderDryRun heads the summary of a dry run.
	MsgSummaryHeaderDryRun = "== agesweep summary (dry run, nothing deleted) =="

	// MsgDryRunFile is one report line per file a dry run would delete. Arguments: path, size.
	MsgDryRunFile = "[dry-run] would delete %s (%s)\n"

	// MsgDryRunDir is one report line per empty directory a dry run would remove.
	MsgDryRunDir = "[dry-run] would remove empty directory %s\n"

	// MsgSummaryRoot is the per-root line. Arguments: root, files, size.
	MsgSummaryRoot = "  %s: %d file(s), %s\n"

	// MsgSummaryRootSkipped marks a root that could not be swept.
	MsgSummaryRootSkipped = "  %s: skipped (%s)\n"

	// MsgSummaryDeleted is the live total. Arguments: files, size.
	MsgSummaryDeleted = "Deleted %d file(s), freed %s\n"

	// MsgSummaryDryRunFiles is the dry-run total. Arguments: files, size.
	MsgSummaryDryRunFiles = "%d file(s) would be deleted, %s\n"

	// MsgSummaryEmptyDirs is the live empty-directory count.
	MsgSummaryEmptyDirs = "Removed %d empty director(ies)\n"

	// MsgSummaryDryRunDirs is the dry-run empty-directory count.
	MsgSummaryDryRunDirs = "%d empty director(ies) would be removed\n"

	// MsgSummaryFailures counts per-item failures. Arguments: delete failures, scan warnings.
	MsgSummaryFailures = "Failures: %d delete error(s), %d unreadable path(s)\n"

	// MsgSummaryFreeSpace reports free space on a root's filesystem. Arguments: root, size.
	MsgSummaryFreeSpace = "  free space on %s: %s\n"
)

// Config messages
const (
	// MsgConfigLoadError is the error message when configuration loading fails.
	MsgConfigLoadError = "Failed to load configuration: %v\n"

	// MsgConfigValidationError is the message when configuration validation fails.
	MsgConfigValidationError = "Configuration validation failed:\n"

	// MsgConfigValid is the message when configuration is successfully loaded and validated.
	MsgConfigValid = "Configuration is valid"

	// MsgConfigValidatePrefix is the prefix for configuration validation errors.
	MsgConfigValidatePrefix = "  - %v\n"

	// MsgErrorFormat is the prefix for formatting error messages.
	MsgErrorFormat = "Error: %v"
)
