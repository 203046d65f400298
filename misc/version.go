// Package misc keeps program identity, values are set at build time with
// -ldflags "-X seqsize/misc.version=... -X seqsize/misc.gitHash=...".
package misc

import (
	"runtime/debug"
)

var (
	appName = "seqsize"
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit program was built from, falling back to VCS
// information stamped by go build.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
