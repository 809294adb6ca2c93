package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrVersionNotFound indicates an unknown catalogue version token.
	ErrVersionNotFound = errors.New("catalogue version not found")

	// ErrBundleNotFound indicates no bundle exists for a (prefix, suffix) key.
	ErrBundleNotFound = errors.New("service bundle not found")
)

// Violation is a single schema-validation failure inside one bundle record.
// Path is a JSON pointer into the record ("/" for the record root).
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// SchemaViolationError is fatal at load time: a fixture record failed schema
// validation. Index is zero-based and counts across the whole concatenated
// record sequence of the version, not per file.
type SchemaViolationError struct {
	Version    string
	File       string
	Index      int
	Violations []Violation
}

func (e *SchemaViolationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bundle %d from %s fails %s schema validation", e.Index, e.File, e.Version)
	for _, v := range e.Violations {
		fmt.Fprintf(&b, "\n  %s", v)
	}
	return b.String()
}

// DuplicateKeyError is fatal at load time: two bundles within one version share
// the same (prefix, suffix) key. File names the fixture holding the second
// occurrence.
type DuplicateKeyError struct {
	Version string
	File    string
	Prefix  string
	Suffix  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate bundle key %s/%s in %s (version %s)", e.Prefix, e.Suffix, e.File, e.Version)
}

// ConfigurationError is fatal at startup: the catalogue was assembled from an
// inconsistent configuration (duplicate version registration, unloadable
// schema, unknown latest pin, and similar authoring mistakes).
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "catalogue configuration: " + e.Reason
}

// configErrorf builds a ConfigurationError from a format string.
func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidParameterError is a client error: a query parameter is out of range or
// not in the accepted vocabulary. It carries enough detail for the caller to
// correct the request.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}
