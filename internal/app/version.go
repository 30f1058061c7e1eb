package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/visaletter-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion formats Version with the commit and build time. Values not
// injected at link time fall back to the VCS stamp recorded by the Go
// toolchain, then to "unknown".
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		commit = firstNonEmpty(commit, c, "unknown")
		built = firstNonEmpty(built, b, "unknown")
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return revision, at
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
