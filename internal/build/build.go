// Package build provides build-time information for the CLI application.
// Values are set via ldflags during release builds.
package build

// Overridden via ldflags, e.g.:
// -X github.com/atheneum-dev/forge/internal/build.version=x.y.z
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
func Version() string {
	return version
}

// GitCommit returns the git commit the binary was built from.
func GitCommit() string {
	return gitCommit
}

// BuildDate returns the build timestamp.
func BuildDate() string {
	return buildDate
}
