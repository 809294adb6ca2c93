// Package cmd provides command implementations for the catalogd CLI.
package cmd

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates fixture records failed schema validation.
	ExitValidationError = 2

	// ExitConfigError indicates the configuration is missing or invalid.
	ExitConfigError = 3

	// ExitNotFound indicates a version, bundle, or file was not found.
	ExitNotFound = 4

	// ExitDiffChanges indicates a diff found differences, mirroring diff(1).
	ExitDiffChanges = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConfigError:
		return "Configuration Error"
	case ExitNotFound:
		return "Not Found"
	case ExitDiffChanges:
		return "Differences Found"
	default:
		return "Unknown"
	}
}
