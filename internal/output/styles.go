package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: service keys, versions, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for table header cells.
	ColorBlue = lipgloss.Color("12")

	// ColorGreen is used for the "valid" record status (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "inactive" service status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "invalid" record status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "duplicate" record status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (service keys, versions, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (loading, vetting, serving).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Record status constants.
const (
	StatusValid     = "valid"
	StatusInvalid   = "invalid"
	StatusDuplicate = "duplicate"
	StatusActive    = "active"
	StatusInactive  = "inactive"
)

// StatusStyle returns the lipgloss style for a given record status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusValid, StatusActive:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusInactive:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusInvalid:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusDuplicate:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minKeyColumnWidth is the minimum width for the record key column before the
// status suffix. This ensures status words align consistently.
const minKeyColumnWidth = 48

// FormatRecordLine renders a record identifier with a right-aligned,
// color-coded status suffix.
//
// Format: s:<version/prefix/suffix>  <status>
//
// The "s:" prefix is dim, the key is cyan, and the status uses StatusStyle.
func FormatRecordLine(version, key, status string) string {
	path := fmt.Sprintf("%s/%s", version, key)

	padding := minKeyColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("s:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
