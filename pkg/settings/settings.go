// Package settings provides build metadata, runtime configuration, and
// context helpers used across the tabula CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tabula"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// InputSettings describes where the tabular data for a run comes from:
// a file path, or standard input when Path is empty. Format names the input
// format ("json", "yaml", "toml", "csv"); empty means detect from the file
// extension.
type InputSettings struct {
	FromStdin bool
	Path      string
	Format    string
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
// It includes options for logging, input source, output styling, and error
// handling behavior.
type Run struct {
	MinLogLevel   int8
	InputSettings InputSettings
	IsQuiet       bool
	NoColor       bool
	ExitOnError   bool
}

// NewCliParams initializes and returns a pointer to a Run struct with default
// CLI parameters: info-level logging, stdin input, colored output, and exit
// on error.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		InputSettings: InputSettings{
			FromStdin: true,
		},
		IsQuiet:     false,
		NoColor:     false,
		ExitOnError: true,
	}
}
