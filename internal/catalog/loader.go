package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/surfeosc/catalogd/internal/output"
)

// FixtureLoader turns fixture files into an immutable Dataset. Every record is
// schema-validated before it is admitted; the first failure aborts the load.
type FixtureLoader struct {
	validator *BundleValidator
}

// NewFixtureLoader builds a loader that validates against entry's schema.
func NewFixtureLoader(entry *SchemaEntry) *FixtureLoader {
	return &FixtureLoader{validator: NewBundleValidator(entry)}
}

// Load reads the fixture files in order and returns the dataset for version.
//
// Files are concatenated into one record sequence, so record indexes in errors
// count from the start of the first file. The load fails fast: the first
// schema violation or duplicate key stops everything, which keeps a
// misauthored catalogue from ever serving.
func (l *FixtureLoader) Load(version string, files []string) (*Dataset, error) {
	if len(files) == 0 {
		return nil, configErrorf("no fixture files configured for version %s", version)
	}

	var bundles []*ServiceBundle
	index := map[Key]*ServiceBundle{}
	offset := 0

	for _, path := range files {
		records, err := ReadFixtureRecords(path)
		if err != nil {
			return nil, configErrorf("fixture %s: %v", path, err)
		}

		for i, raw := range records {
			bundle, violations := l.admit(raw)
			if len(violations) > 0 {
				return nil, &SchemaViolationError{
					Version:    version,
					File:       path,
					Index:      offset + i,
					Violations: violations,
				}
			}

			if _, dup := index[bundle.Key()]; dup {
				return nil, &DuplicateKeyError{
					Version: version,
					File:    path,
					Prefix:  bundle.Service.Prefix,
					Suffix:  bundle.Service.Suffix,
				}
			}

			index[bundle.Key()] = bundle
			bundles = append(bundles, bundle)
		}

		output.Debug("Loaded fixture file", "version", version, "file", path, "records", len(records))
		offset += len(records)
	}

	output.Debug("Dataset ready", "version", version, "bundles", len(bundles))

	return &Dataset{version: version, bundles: bundles, index: index}, nil
}

// admit validates and decodes one raw record. A non-empty violation list means
// the record must not enter the dataset.
func (l *FixtureLoader) admit(raw json.RawMessage) (*ServiceBundle, []Violation) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, []Violation{{Path: "/", Message: err.Error()}}
	}

	if outcome := l.validator.Validate(instance); !outcome.Valid() {
		return nil, outcome.Violations
	}

	bundle, err := ParseBundle(raw)
	if err != nil {
		return nil, []Violation{{Path: "/service/id", Message: err.Error()}}
	}
	return bundle, nil
}

// RecordFault describes one failing record found by Check. ServiceID is best
// effort and may be empty when the record does not carry one.
type RecordFault struct {
	File       string      `json:"file"`
	Index      int         `json:"index"`
	ServiceID  string      `json:"serviceId,omitempty"`
	Duplicate  bool        `json:"duplicate,omitempty"`
	Violations []Violation `json:"violations"`
}

// CheckReport summarizes a collect-all validation pass over one version's
// fixtures.
type CheckReport struct {
	Version string        `json:"version"`
	Files   []string      `json:"files"`
	Records int           `json:"records"`
	Faults  []RecordFault `json:"faults,omitempty"`
}

// Valid reports whether every record passed.
func (r *CheckReport) Valid() bool {
	return len(r.Faults) == 0
}

// Check walks all fixture files and reports every schema violation and
// duplicate key instead of stopping at the first, which is what an author
// fixing a fixture batch wants. Only file-level problems (unreadable or
// unparseable files) come back as an error.
func (l *FixtureLoader) Check(version string, files []string) (*CheckReport, error) {
	report := &CheckReport{
		Version: version,
		Files:   files,
	}
	seen := map[Key]string{}

	for _, path := range files {
		records, err := ReadFixtureRecords(path)
		if err != nil {
			return nil, configErrorf("fixture %s: %v", path, err)
		}

		for i, raw := range records {
			index := report.Records + i

			bundle, violations := l.admit(raw)
			if len(violations) > 0 {
				report.Faults = append(report.Faults, RecordFault{
					File:       path,
					Index:      index,
					ServiceID:  peekServiceID(raw),
					Violations: violations,
				})
				continue
			}

			if first, dup := seen[bundle.Key()]; dup {
				report.Faults = append(report.Faults, RecordFault{
					File:      path,
					Index:     index,
					ServiceID: bundle.Service.ID,
					Duplicate: true,
					Violations: []Violation{{
						Path:    "/service/id",
						Message: fmt.Sprintf("duplicate of %s first seen in %s", bundle.Key(), first),
					}},
				})
				continue
			}
			seen[bundle.Key()] = path
		}

		report.Records += len(records)
	}

	return report, nil
}

// ReadFixtureRecords loads one fixture file as an ordered record sequence.
// YAML files are converted to JSON first so both formats feed the same
// pipeline.
func ReadFixtureRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isYAMLPath(path) {
		data, err = sigsyaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("converting YAML: %w", err)
		}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("expected a top-level array of records: %w", err)
	}
	return records, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// peekServiceID pulls service.id out of a record that may be otherwise
// invalid.
func peekServiceID(raw json.RawMessage) string {
	var env bundleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Service.ID
}
