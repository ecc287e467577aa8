package main

import (
	"github.com/bnema/flashmark/internal/cli/cmd"
	"github.com/bnema/flashmark/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	})
	cmd.Execute()
}
