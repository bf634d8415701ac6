package main

import (
	"runtime"

	"github.com/bnema/wring/internal/cli/cmd"
	"github.com/bnema/wring/internal/domain/build"
)

// Set via ldflags at release time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
