package constants

import (
	"math"
	"time"
)

// DefaultVersion is the default version of the application
const DefaultVersion = "0.1.0-dev"

// DefaultBuildTime is the default build time when not provided at build time
const DefaultBuildTime = "unknown"

// DefaultGitCommit is the default git commit hash when not provided at build time
const DefaultGitCommit = "unknown"

// DefaultGoVersion is the default Go version when not provided at build time
const DefaultGoVersion = "unknown"

// MaxDays is the largest threshold whose length still fits in a time.Duration.
const MaxDays = int(math.MaxInt64 / int64(24*time.Hour))

// DefaultDays is the age threshold, in days, used when neither the config nor --days sets one.
const DefaultDays = 60

// Logging defaults. Warn keeps non-verbose runs down to warnings, errors and the summary.
const (
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultLogOutput     = "stderr"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// DefaultRoots are swept when the config names none.
func DefaultRoots() []string {
	return []string{"~/Downloads", "~/.Trash"}
}

// DefaultExcludePatterns match desktop metadata files by base name. They are
// always applied; configured patterns are added to them.
// The Icon pattern matches the literal carriage return macOS puts in custom folder icon files.
func DefaultExcludePatterns() []string {
	return []string{
		`\.DS_Store$`,
		`^Icon\r$`,
		`Thumbs\.db$`,
	}
}
