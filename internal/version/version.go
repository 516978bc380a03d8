// Package version provides version information for the faspi CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

const banner = `
   ███████╗ █████╗ ███████╗██████╗ ██╗
   ██╔════╝██╔══██╗██╔════╝██╔══██╗██║
   █████╗  ███████║███████╗██████╔╝██║
   ██╔══╝  ██╔══██║╚════██║██╔═══╝ ██║
   ██║     ██║  ██║███████║██║     ██║
   ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝
`

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Platform is GOOS/GOARCH.
	Platform string `json:"platform"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsDev reports whether v is a development build, which never checks for
// updates.
func IsDev(v string) bool {
	return v == "" || strings.HasSuffix(v, "-dev")
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("faspi:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.Platform)
}

// Banner returns the logo followed by the version line.
func (i Info) Banner() string {
	return banner + fmt.Sprintf("%*s\n", 22+len(i.Version)/2, i.Version)
}
