package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the global logger. Diagnostics go to stderr so they never
// interleave with rendered views on stdout.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
