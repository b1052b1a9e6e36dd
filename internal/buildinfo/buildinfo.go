// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// These are overridden via -ldflags "-X nucleus/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact identifier for boot logs and the monitor.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
