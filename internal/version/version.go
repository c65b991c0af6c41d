// Package version reports build information.
package version

import "fmt"

// Version is the application version, set via ldflags during build.
var Version = "devel"

// Commit is the git commit hash, set via ldflags during build.
var Commit = "0000000"

// String returns the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("listkit %s (%s)", Version, Commit)
}
