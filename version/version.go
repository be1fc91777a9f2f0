// Package version exposes the build metadata stamped into the askit binary.
package version

import (
	"fmt"
	"runtime"
)

// Stamped by the linker via -ldflags; a plain source build reports "dev".
var (
	// Version is the release tag, when built from one.
	Version = "dev"

	// CommitHash identifies the exact source revision the rewrite pass
	// shipped with, so sidecar consumers can pin generator versions.
	CommitHash = "dev"

	// BuildTime records when the binary was linked.
	BuildTime = "unknown"
)

// Info is the full build description. JSON tags match the --json output of
// the version command.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get assembles the build description for the running binary.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the one-line form used by the version command.
func (i Info) String() string {
	return fmt.Sprintf("askit %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}
