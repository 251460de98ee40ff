package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/kruttikastudy/icd-website/internal/app.Version=1.4.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version string reported by /health and the
// startup log. Unstamped builds fall back to the VCS data the Go toolchain
// embeds.
func BuildVersion() string {
	commit, built, dirty := Commit, BuildTime, false
	if commit == "" || built == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					if commit == "" {
						commit = s.Value
					}
				case "vcs.time":
					if built == "" {
						built = s.Value
					}
				case "vcs.modified":
					dirty = s.Value == "true"
				}
			}
		}
	}

	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		commit = "unknown"
	}
	if dirty {
		commit += "-dirty"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
