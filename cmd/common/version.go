package common

import (
	"fmt"
	"runtime"
)

const (
	// Application information
	ProjectName    = "DCA Strategy Planner"
	ProjectVersion = "1.2.0"

	// Build information, normally set during build via -ldflags
	BuildDate   = "2024-01-01"
	BuildCommit = "dev"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	ProjectName  string `json:"project_name"`
	Version      string `json:"version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
	GoVersion    string `json:"go_version"`
	Architecture string `json:"architecture"`
}

// GetVersionInfo returns complete version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		ProjectName:  ProjectName,
		Version:      ProjectVersion,
		BuildDate:    BuildDate,
		BuildCommit:  BuildCommit,
		GoVersion:    runtime.Version(),
		Architecture: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// PrintVersion prints version information in a formatted way
func PrintVersion(appName string) {
	info := GetVersionInfo()

	fmt.Printf("%s v%s\n", appName, info.Version)
	fmt.Printf("Build: %s (%s)\n", info.BuildCommit, info.BuildDate)
	fmt.Printf("Go: %s (%s)\n", info.GoVersion, info.Architecture)
}

// IsDevBuild returns true if this is a development build
func IsDevBuild() bool {
	return BuildCommit == "dev"
}
