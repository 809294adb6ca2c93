// Package output provides terminal output utilities for the catalogd CLI.
package output

import "strings"

// OutputFormat selects how commands render their results.
type OutputFormat string

const (
	// FormatTable renders a bordered terminal table. The default everywhere.
	FormatTable OutputFormat = "table"

	// FormatJSON renders indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML renders YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat. Unknown or empty
// strings fall back to FormatTable.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return FormatTable
	}
}

// ValidFormats returns the accepted format strings, default first.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// FormatFlagUsage is the help text for the -o flag shared by every command
// that supports multiple output formats.
func FormatFlagUsage() string {
	return "Output format: " + strings.Join(ValidFormats(), ", ")
}
