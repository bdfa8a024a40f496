package version

import (
	"fmt"
	"runtime"
)

// Build metadata injected by goreleaser or makefile
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns a formatted version string
func GetVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return Version
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() string {
	if Version == "dev" {
		return fmt.Sprintf("recap dev (%s, %s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("recap %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
