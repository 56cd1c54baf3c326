// Package version exposes the build version of casedesk.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rshade/casedesk/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "dev"

// commit is the git commit the binary was built from.
//
//nolint:gochecknoglobals // Set by the linker.
var commit = "unknown"

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}

// GetCommit returns the git commit recorded at build time.
func GetCommit() string {
	return commit
}
