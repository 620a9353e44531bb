// Package buildinfo holds version information injected at build time via ldflags:
//
//	-X github.com/atrofac/atrofac/internal/buildinfo.Version=v1.2.0
package buildinfo

import "fmt"

var (
	Version    = "dev"
	Codename   = "Zephyrus"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a one-line description of the build for logs.
func Summary() string {
	return fmt.Sprintf("%s (%s, commit %s, built %s)", Version, Codename, CommitHash, BuildDate)
}
