package main

import (
	"os"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/aatumaykin/agesweep/internal/version"
)

// Set with -ldflags "-X main.Version=...".
var (
	Version   = constants.DefaultVersion
	BuildTime = constants.DefaultBuildTime
	GitCommit = constants.DefaultGitCommit
	GoVersion = constants.DefaultGoVersion
)

func init() {
	version.SetInfo(Version, BuildTime, GitCommit, GoVersion)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
