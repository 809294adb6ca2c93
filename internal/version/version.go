// Package version provides version information for the catalogd binary.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the binary version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// SchemaDraft is the JSON Schema draft every catalogue schema is compiled
// against.
const SchemaDraft = "2020-12"

// Info contains version information.
type Info struct {
	// Version is the binary version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// SchemaDraft is the JSON Schema draft used for validation.
	SchemaDraft string `json:"schemaDraft"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:     Version,
		GitCommit:   GitCommit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		SchemaDraft: SchemaDraft,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("catalogd:\n  Version:  %s\n  Build ID: %s/%s\n\nValidation:\n  Schema Draft: %s",
		i.Version, i.BuildDate, i.GitCommit, i.SchemaDraft)
}
