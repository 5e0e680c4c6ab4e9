package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version   = "0.0.0-dev"
	Revision  = "unknown"
	BuildDate = "unknown"
)

// String returns the version, with the VCS revision when known.
func String() string {
	rev := Revision
	if rev == "unknown" {
		rev = vcsRevision()
	}

	if rev == "" || rev == "unknown" {
		return Version
	}

	return fmt.Sprintf("%s+%s", Version, rev)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}

	return ""
}
