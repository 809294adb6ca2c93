package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// versionTokenRegex validates catalogue version tokens (v1, v3, v10, ...).
var versionTokenRegex = regexp.MustCompile(`^v\d+$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	// Read the embedded schema
	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	// Compile the schema
	compiled := ctx.CompileBytes(schemaData)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("looking up #Config: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration. Structural problems come from
// CUE unification; cross-field rules are checked in Go. All findings are
// collected before returning.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	errs = append(errs, v.structural(cfg)...)
	errs = append(errs, semantic(cfg)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// structural unifies the config's JSON form with the embedded #Config schema.
// JSON is a subset of CUE, so the encoded config compiles directly.
func (v *Validator) structural(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	data, err := json.Marshal(cfg)
	if err != nil {
		return ValidationErrors{{Field: "config", Message: fmt.Sprintf("encoding: %v", err)}}
	}

	val := v.ctx.CompileBytes(data)
	if val.Err() != nil {
		return ValidationErrors{{Field: "config", Message: fmt.Sprintf("compiling: %v", val.Err())}}
	}

	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Final(), cue.Concrete(false)); err != nil {
		for _, ce := range cueerrors.Errors(err) {
			field := strings.Join(ce.Path(), ".")
			if field == "" {
				field = "config"
			}
			format, args := ce.Msg()
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf(format, args...),
			})
		}
	}

	return errs
}

// semantic applies the cross-field rules the CUE schema cannot express.
func semantic(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	if cfg.ShutdownTimeout != "" {
		d, err := time.ParseDuration(cfg.ShutdownTimeout)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   "shutdownTimeout",
				Message: fmt.Sprintf("%q is not a valid duration", cfg.ShutdownTimeout),
			})
		case d <= 0:
			errs = append(errs, ValidationError{
				Field:   "shutdownTimeout",
				Message: "must be positive",
			})
		}
	}

	if len(cfg.Catalogue.Versions) == 0 {
		errs = append(errs, ValidationError{
			Field:   "catalogue.versions",
			Message: "at least one version must be configured",
		})
		return errs
	}

	for _, token := range cfg.Catalogue.VersionTokens() {
		vc := cfg.Catalogue.Versions[token]

		if !versionTokenRegex.MatchString(token) {
			errs = append(errs, ValidationError{
				Field:   "catalogue.versions." + token,
				Message: "version token must match v<number>",
			})
		}

		if strings.TrimSpace(vc.Schema) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("catalogue.versions.%s.schema", token),
				Message: "must name a schema file",
			})
		}

		if len(vc.Fixtures) == 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("catalogue.versions.%s.fixtures", token),
				Message: "must name at least one fixture file",
			})
		}
		for i, fixture := range vc.Fixtures {
			if strings.TrimSpace(fixture) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("catalogue.versions.%s.fixtures[%d]", token, i),
					Message: "must not be empty",
				})
			}
		}
	}

	if latest := cfg.Catalogue.Latest; latest != "" {
		if _, ok := cfg.Catalogue.Versions[latest]; !ok {
			errs = append(errs, ValidationError{
				Field:   "catalogue.latest",
				Message: fmt.Sprintf("%q is not a configured version", latest),
			})
		}
	}

	return errs
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}
