package cmd

import (
	"errors"

	"github.com/surfeosc/catalogd/internal/catalog"
	"github.com/surfeosc/catalogd/internal/config"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
)

// ErrDiffChanges signals that a diff found differences. Not a failure, but
// the shell gets a dedicated exit code for scripting.
var ErrDiffChanges = errors.New("differences found")

// ExitError wraps an error with an exit code. Printed marks errors the
// command layer already rendered, so main does not repeat them.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error. Typed
// errors from the catalogue and config layers map directly, so commands only
// wrap in ExitError when they need to override.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var schemaErr *catalog.SchemaViolationError
	var dupErr *catalog.DuplicateKeyError
	var catConfErr *catalog.ConfigurationError
	var cfgErrs config.ValidationErrors

	switch {
	case errors.Is(err, oerrors.ErrValidation),
		errors.As(err, &schemaErr),
		errors.As(err, &dupErr):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrConfiguration),
		errors.As(err, &catConfErr),
		errors.As(err, &cfgErrs):
		return ExitConfigError
	case errors.Is(err, oerrors.ErrNotFound),
		errors.Is(err, catalog.ErrVersionNotFound),
		errors.Is(err, catalog.ErrBundleNotFound):
		return ExitNotFound
	case errors.Is(err, ErrDiffChanges):
		return ExitDiffChanges
	default:
		return ExitGeneralError
	}
}
