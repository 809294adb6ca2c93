// Package fixdiff compares two fixture files record by record, which is how a
// freshly harvested batch gets reviewed against the one currently serving.
package fixdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/surfeosc/catalogd/internal/catalog"
)

// Result classifies record-level changes between two fixture files.
type Result struct {
	// HasChanges indicates if there are differences.
	HasChanges bool

	// Added records (in the new file, not in the old).
	Added []string

	// Removed records (in the old file, not in the new).
	Removed []string

	// Modified records (present in both, with different content).
	Modified []ModifiedRecord
}

// ModifiedRecord represents a record with changes.
type ModifiedRecord struct {
	// Key is the record identifier (prefix/suffix).
	Key string

	// Diff is the rendered diff output.
	Diff string
}

// NewResult creates a new empty Result.
func NewResult() *Result {
	return &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]ModifiedRecord, 0),
	}
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// AddAdded records a bundle that is new.
func (r *Result) AddAdded(key string) {
	r.Added = append(r.Added, key)
	r.HasChanges = true
}

// AddRemoved records a bundle that is gone.
func (r *Result) AddRemoved(key string) {
	r.Removed = append(r.Removed, key)
	r.HasChanges = true
}

// AddModified records a bundle with modifications.
func (r *Result) AddModified(key, diff string) {
	r.Modified = append(r.Modified, ModifiedRecord{
		Key:  key,
		Diff: diff,
	})
	r.HasChanges = true
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}

	return strings.Join(parts, ", ")
}

// Options configures the comparison.
type Options struct {
	// UseColor enables colorized diff output.
	UseColor bool
}

// Compare loads two fixture files and classifies record changes from old to
// new. Records are matched on their prefix/suffix key; records without a
// usable key cannot be matched and show up as removed plus added.
func Compare(oldPath, newPath string, opts Options) (*Result, error) {
	oldKeys, oldRecords, err := loadKeyed(oldPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", oldPath, err)
	}

	newKeys, newRecords, err := loadKeyed(newPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", newPath, err)
	}

	result := NewResult()

	for _, key := range newKeys {
		oldRaw, exists := oldRecords[key]
		if !exists {
			result.AddAdded(key)
			continue
		}

		diff, err := compareRecords(oldRaw, newRecords[key], opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", key, err)
		}
		if diff != "" {
			result.AddModified(key, diff)
		}
	}

	for _, key := range oldKeys {
		if _, exists := newRecords[key]; !exists {
			result.AddRemoved(key)
		}
	}

	return result, nil
}

// loadKeyed reads a fixture file and indexes its records by key, keeping file
// order. A record that does not parse gets a positional key so it still shows
// up in the comparison.
func loadKeyed(path string) ([]string, map[string]json.RawMessage, error) {
	records, err := catalog.ReadFixtureRecords(path)
	if err != nil {
		return nil, nil, err
	}

	keys := make([]string, 0, len(records))
	byKey := make(map[string]json.RawMessage, len(records))

	for i, raw := range records {
		key := recordKey(raw, i)
		if _, dup := byKey[key]; dup {
			// Duplicates are a vet concern; for diffing, the last one wins.
			byKey[key] = raw
			continue
		}
		keys = append(keys, key)
		byKey[key] = raw
	}

	return keys, byKey, nil
}

func recordKey(raw json.RawMessage, index int) string {
	bundle, err := catalog.ParseBundle(raw)
	if err != nil {
		return fmt.Sprintf("record[%d]", index)
	}
	return bundle.Key().String()
}

// compareRecords compares two raw records and returns a rendered diff.
// Returns empty string if no differences.
func compareRecords(oldRaw, newRaw json.RawMessage, useColor bool) (string, error) {
	oldInput, err := parseRecordInput("old", oldRaw)
	if err != nil {
		return "", fmt.Errorf("parsing old record: %w", err)
	}

	newInput, err := parseRecordInput("new", newRaw)
	if err != nil {
		return "", fmt.Errorf("parsing new record: %w", err)
	}

	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing records: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report, useColor)
}

// parseRecordInput parses record bytes into a dyff input file. JSON is a YAML
// subset, so the raw record loads directly.
func parseRecordInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderReport renders a dyff report to a string.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	result := buf.String()

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
