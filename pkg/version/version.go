// Package version provides version information for the application.
//
// It centralizes build-time metadata so that version reporting is
// consistent across all components.
package version

import "runtime/debug"

// Set via ldflags at build time; Revision falls back to VCS metadata
// embedded in the binary.
var (
	Version  = "dev"
	Revision = revision()
)

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return "unknown"
}
