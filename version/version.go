package version

import "fmt"

var (
	// Version is set at build time
	Version = "0.4.1"
	// GitCommit is set at build time
	GitCommit = "n/a"
	// BuildDate is set at build time
	BuildDate = "n/a"
)

// Summary prints a summary of all build info.
func Summary() string {
	return fmt.Sprintf("version:\t%s\nbuild date:\t%s\ngit commit:\t%s", Version, BuildDate, GitCommit)
}
