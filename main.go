package main

import (
	"os"

	"github.com/pveldandi/recap/cmd"
	"github.com/pveldandi/recap/internal/version"
)

// Build metadata injected by goreleaser or makefile
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
