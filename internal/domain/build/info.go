// Package build describes the running binary.
package build

import "fmt"

const repoURL = "https://github.com/bnema/dumbterm"

// Info holds build metadata, injected via ldflags or read from the module
// build info for go install builds.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// RepoURL returns the project repository.
func RepoURL() string {
	return repoURL
}

// IsDev reports whether the binary was built without a release version.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev" || i.Version == "(devel)"
}

// ShortCommit returns the first 7 characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

func (i Info) String() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return "dumbterm " + i.Version
	}
	return fmt.Sprintf("dumbterm %s (%s)", i.Version, i.ShortCommit())
}
