package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSchema is a trimmed-down bundle schema used across the package tests:
// required service object with the queryable fields, optional active flag.
const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["service"],
  "properties": {
    "active": { "type": "boolean" },
    "service": {
      "type": "object",
      "required": ["id", "name", "abbreviation", "description", "tagline"],
      "properties": {
        "id": { "type": "string", "pattern": "^[^/]+/[^/]+$" },
        "name": { "type": "string" },
        "abbreviation": { "type": "string" },
        "description": { "type": "string" },
        "tagline": { "type": "string" },
        "lifeCycleStatus": { "type": "string" },
        "tags": { "type": "array", "items": { "type": "string" } }
      }
    }
  }
}`

// bundleSpec is the shorthand the tests use to author records.
type bundleSpec struct {
	id        string
	name      string
	abbr      string
	desc      string
	tagline   string
	lifecycle string
	tags      []string
	active    *bool
}

func rawBundle(t *testing.T, s bundleSpec) json.RawMessage {
	t.Helper()

	svc := map[string]any{
		"id":           s.id,
		"name":         s.name,
		"abbreviation": s.abbr,
		"description":  s.desc,
		"tagline":      s.tagline,
	}
	if s.lifecycle != "" {
		svc["lifeCycleStatus"] = s.lifecycle
	}
	if s.tags != nil {
		svc["tags"] = s.tags
	}

	record := map[string]any{"service": svc}
	if s.active != nil {
		record["active"] = *s.active
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	return raw
}

// datasetFrom builds a dataset directly, bypassing schema validation, for
// query tests that only care about filtering and ordering.
func datasetFrom(t *testing.T, specs ...bundleSpec) *Dataset {
	t.Helper()

	ds := &Dataset{version: "v1", index: map[Key]*ServiceBundle{}}
	for _, s := range specs {
		b, err := ParseBundle(rawBundle(t, s))
		require.NoError(t, err)
		ds.bundles = append(ds.bundles, b)
		ds.index[b.Key()] = b
	}
	return ds
}

// testEntry compiles testSchema into a registry entry.
func testEntry(t *testing.T) *SchemaEntry {
	t.Helper()

	registry := NewSchemaRegistry()
	require.NoError(t, registry.Register("v1", []byte(testSchema)))
	entry, err := registry.Get("v1")
	require.NoError(t, err)
	return entry
}

// writeFixture writes one fixture file into dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fixtureOf serializes records into a fixture-file array.
func fixtureOf(t *testing.T, records ...json.RawMessage) string {
	t.Helper()

	data, err := json.Marshal(records)
	require.NoError(t, err)
	return string(data)
}

func boolp(v bool) *bool {
	return &v
}
