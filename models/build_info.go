package models

import "fmt"

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during release builds and shown by
// the version command for diagnostics and release traceability.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
// Empty values are normalized to "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp string.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string { return b.commit }

// String renders the build metadata as the multi-line version output.
// It implements the [fmt.Stringer] interface.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		b.version, b.date, b.commit)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}

	return value
}
