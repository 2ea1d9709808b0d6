// Package version reports the build information stamped into the binary.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Set at build time, e.g.
	//   go build -ldflags "-X github.com/ehsaniara/botvisor/pkg/version.Version=v0.3.0"
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"
	Component = "botvisor"
)

// BuildInfo represents the complete build information
type BuildInfo struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	GitTag       string `json:"git_tag"`
	BuildDate    string `json:"build_date"`
	Component    string `json:"component"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:      GetVersion(),
		GitCommit:    GitCommit,
		GitTag:       GitTag,
		BuildDate:    BuildDate,
		Component:    Component,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

// GetVersion prefers the stamped version, then the git tag, then dev-<commit>.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if GitTag != "unknown" && GitTag != "" {
		return GitTag
	}
	return "dev-" + GitCommit
}

func GetShortVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" && len(GitCommit) >= 7 {
		return fmt.Sprintf("%s (%s)", v, GitCommit[:7])
	}
	return v
}

// GetLongVersion is the output of `botvisor version`.
func GetLongVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s\n", info.Component, GetShortVersion())
	if info.BuildDate != "unknown" {
		fmt.Fprintf(&b, "Built: %s\n", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		fmt.Fprintf(&b, "Commit: %s\n", info.GitCommit)
	}
	fmt.Fprintf(&b, "Go: %s\n", info.GoVersion)
	fmt.Fprintf(&b, "Platform: %s/%s\n", info.Platform, info.Architecture)
	return b.String()
}
