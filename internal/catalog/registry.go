package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaEntry pairs one version's schema document with its compiled form. The
// raw bytes are what clients get back from the schema endpoint; the compiled
// schema is what the validator runs.
type SchemaEntry struct {
	version  string
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

// Version returns the catalogue version the schema belongs to.
func (e *SchemaEntry) Version() string {
	return e.version
}

// Document returns the schema exactly as authored. Callers must not mutate it.
func (e *SchemaEntry) Document() json.RawMessage {
	return e.raw
}

// SchemaRegistry holds one compiled JSON Schema per catalogue version. It is
// populated once during startup and read-only afterwards.
type SchemaRegistry struct {
	entries map[string]*SchemaEntry
}

// NewSchemaRegistry returns an empty registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{entries: map[string]*SchemaEntry{}}
}

// Register compiles raw as a Draft 2020-12 schema and stores it under version.
// Registering a version twice or handing over an uncompilable document is a
// configuration error.
func (r *SchemaRegistry) Register(version string, raw []byte) error {
	if _, exists := r.entries[version]; exists {
		return configErrorf("schema for version %s registered twice", version)
	}

	compiled, err := compileSchema(version, raw)
	if err != nil {
		return configErrorf("compiling schema for version %s: %v", version, err)
	}

	kept := make(json.RawMessage, len(raw))
	copy(kept, raw)

	r.entries[version] = &SchemaEntry{
		version:  version,
		raw:      kept,
		compiled: compiled,
	}
	return nil
}

// Get returns the entry for version, or ErrVersionNotFound.
func (r *SchemaRegistry) Get(version string) (*SchemaEntry, error) {
	entry, ok := r.entries[version]
	if !ok {
		return nil, fmt.Errorf("schema for version %q: %w", version, ErrVersionNotFound)
	}
	return entry, nil
}

// Versions returns the registered versions in lexical order.
func (r *SchemaRegistry) Versions() []string {
	out := make([]string, 0, len(r.entries))
	for v := range r.entries {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func compileSchema(version string, raw []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}

	resource := version + ".schema.json"
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(resource)
}
