// Package build describes the corkboard binary.
package build

import (
	"runtime"
	"strings"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithDefaults fills fields that were not injected at build time.
func (i Info) WithDefaults() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "unknown"
	}
	if i.BuildDate == "" {
		i.BuildDate = "unknown"
	}
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	return i
}

// Short returns "version (commit)" with the commit cut to 7 characters.
func (i Info) Short() string {
	i = i.WithDefaults()
	commit := i.Commit
	if len(commit) > 7 && !strings.Contains(commit, " ") {
		commit = commit[:7]
	}
	return i.Version + " (" + commit + ")"
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/corkboard"
}
