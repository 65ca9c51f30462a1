package booktag

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the booktag library.
const Version = "0.1.0"

// Populated via -ldflags, for example:
//
//	go build -ldflags="-X github.com/simonhull/booktag.commit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/booktag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	commit    = "unknown"
	buildTime = "unknown"
)

// BuildInfo describes the library version and the build that produced it.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// Build reports the version and build metadata of the linked library.
func Build() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("booktag %s (%s, built %s, %s)", b.Version, b.Commit, b.BuildTime, b.GoVersion)
}
