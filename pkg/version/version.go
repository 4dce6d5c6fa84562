// Package version holds build metadata for the k8s-docs-mcp-server binary.
// Version, GitCommit, and BuildDate are meant to be overridden at build
// time via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// BinaryName is the canonical name of the server binary.
const BinaryName = "k8s-docs-mcp-server"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"

	// GoVersion is the Go toolchain version used for the build.
	GoVersion = runtime.Version()

	// Platform is the os/arch pair the binary targets.
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns a human-readable multi-line version report.
func GetVersionInfo() string {
	return fmt.Sprintf(`%s
Version:    %s
Git commit: %s
Built:      %s
Go version: %s
Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}

// UserAgent returns the User-Agent header value sent on outbound
// requests to kubernetes.io.
func UserAgent() string {
	return BinaryName + "/" + Version
}
