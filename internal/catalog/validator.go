package catalog

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishMessages = message.NewPrinter(language.English)

// BundleValidator checks decoded bundle records against one version's compiled
// schema. It is stateless beyond the schema reference and safe for concurrent
// use.
type BundleValidator struct {
	schema *jsonschema.Schema
}

// NewBundleValidator builds a validator bound to one schema entry.
func NewBundleValidator(entry *SchemaEntry) *BundleValidator {
	return &BundleValidator{schema: entry.compiled}
}

// Outcome is the result of validating a single record.
type Outcome struct {
	Violations []Violation
}

// Valid reports whether the record passed.
func (o Outcome) Valid() bool {
	return len(o.Violations) == 0
}

// Validate runs the schema against an already-decoded record. The instance
// must come from jsonschema.UnmarshalJSON so number handling matches the
// validator's expectations.
func (v *BundleValidator) Validate(instance any) Outcome {
	err := v.schema.Validate(instance)
	if err == nil {
		return Outcome{}
	}

	if verr, ok := err.(*jsonschema.ValidationError); ok {
		return Outcome{Violations: flattenViolations(verr)}
	}
	return Outcome{Violations: []Violation{{Path: "/", Message: err.Error()}}}
}

// flattenViolations walks the validation error tree and keeps only the leaf
// causes, which are the actionable ones.
func flattenViolations(err *jsonschema.ValidationError) []Violation {
	var out []Violation
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, Violation{
				Path:    instancePointer(e.InstanceLocation),
				Message: e.ErrorKind.LocalizedString(englishMessages),
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return out
}

func instancePointer(location []string) string {
	if len(location) == 0 {
		return "/"
	}
	return "/" + strings.Join(location, "/")
}
