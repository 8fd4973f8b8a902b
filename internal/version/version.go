// Package version holds the changelog-updater build information.
// It has no dependencies and can be safely imported from any package.
package version

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the multi-line version banner printed by --version.
func String() string {
	return fmt.Sprintf("changelog-updater %s\nBuild Date: %s\nGit Commit: %s",
		Version, BuildDate, Commit)
}
