package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalogue() CatalogueConfig {
	return CatalogueConfig{
		Latest: "v1",
		Versions: map[string]VersionConfig{
			"v1": {
				Schema:   "schema/v1.json",
				Fixtures: []string{"data/v1/services.json"},
			},
		},
	}
}

// fieldsOf collects the field names of all findings, for membership checks.
func fieldsOf(err error) []string {
	verrs, ok := err.(ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestNewValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestValidatorValidate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(DefaultConfig()))
	})

	t.Run("minimal config is valid", func(t *testing.T) {
		cfg := &Config{Catalogue: validCatalogue()}
		assert.NoError(t, v.Validate(cfg))
	})

	t.Run("empty config needs a catalogue", func(t *testing.T) {
		err := v.Validate(&Config{})

		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.versions")
		assert.Contains(t, err.Error(), "at least one version")
	})

	t.Run("unparseable shutdown timeout", func(t *testing.T) {
		cfg := &Config{ShutdownTimeout: "soon", Catalogue: validCatalogue()}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "shutdownTimeout")
		assert.Contains(t, err.Error(), "not a valid duration")
	})

	t.Run("negative shutdown timeout", func(t *testing.T) {
		cfg := &Config{ShutdownTimeout: "-5s", Catalogue: validCatalogue()}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("latest must be a configured version", func(t *testing.T) {
		cat := validCatalogue()
		cat.Latest = "v9"
		cfg := &Config{Catalogue: cat}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.latest")
		assert.Contains(t, err.Error(), `"v9" is not a configured version`)
	})

	t.Run("malformed version token", func(t *testing.T) {
		cfg := &Config{Catalogue: CatalogueConfig{
			Versions: map[string]VersionConfig{
				"one": {
					Schema:   "schema/one.json",
					Fixtures: []string{"data/one/services.json"},
				},
			},
		}}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.versions.one")
	})

	t.Run("version without a schema file", func(t *testing.T) {
		cfg := &Config{Catalogue: CatalogueConfig{
			Versions: map[string]VersionConfig{
				"v1": {Fixtures: []string{"data/v1/services.json"}},
			},
		}}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.versions.v1.schema")
	})

	t.Run("version without fixtures", func(t *testing.T) {
		cfg := &Config{Catalogue: CatalogueConfig{
			Versions: map[string]VersionConfig{
				"v1": {Schema: "schema/v1.json"},
			},
		}}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.versions.v1.fixtures")
	})

	t.Run("blank fixture entry", func(t *testing.T) {
		cfg := &Config{Catalogue: CatalogueConfig{
			Versions: map[string]VersionConfig{
				"v1": {Schema: "schema/v1.json", Fixtures: []string{"data/v1/services.json", "  "}},
			},
		}}

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, fieldsOf(err), "catalogue.versions.v1.fixtures[1]")
	})

	t.Run("findings are collected, not short-circuited", func(t *testing.T) {
		cfg := &Config{
			ShutdownTimeout: "soon",
			Catalogue: CatalogueConfig{
				Latest:   "v9",
				Versions: map[string]VersionConfig{"v1": {}},
			},
		}

		err := v.Validate(cfg)
		require.Error(t, err)

		fields := fieldsOf(err)
		assert.Contains(t, fields, "shutdownTimeout")
		assert.Contains(t, fields, "catalogue.latest")
		assert.Contains(t, fields, "catalogue.versions.v1.schema")
		assert.Contains(t, fields, "catalogue.versions.v1.fixtures")
	})
}

func TestValidatorValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("valid file", func(t *testing.T) {
		path := writeConfigFile(t, `
listen: ":8080"
catalogue:
  latest: v1
  versions:
    v1:
      schema: schema/v1.json
      fixtures: [data/v1/services.json]
`)

		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("invalid file reports findings", func(t *testing.T) {
		path := writeConfigFile(t, `
shutdownTimeout: "whenever"
catalogue:
  versions:
    v1:
      schema: schema/v1.json
      fixtures: [data/v1/services.json]
`)

		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shutdownTimeout")
	})

	t.Run("unreadable file", func(t *testing.T) {
		path := writeConfigFile(t, "catalogue: [broken")

		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config file")
	})
}

func TestValidationErrorFormatting(t *testing.T) {
	single := &ValidationError{Field: "listen", Message: "must not be empty"}
	assert.Equal(t, "listen: must not be empty", single.Error())

	var none ValidationErrors
	assert.Equal(t, "no validation errors", none.Error())

	many := ValidationErrors{
		{Field: "listen", Message: "must not be empty"},
		{Field: "catalogue.latest", Message: "unknown version"},
	}
	msg := many.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "listen: must not be empty")
	assert.Contains(t, msg, "catalogue.latest: unknown version")
}

func TestValidateFileUsesLoaderDefaults(t *testing.T) {
	// A file that only configures the catalogue must still pass: listen and
	// friends are optional and filled in later by WithDefaults.
	path := writeConfigFile(t, `
catalogue:
  versions:
    v1:
      schema: schema/v1.json
      fixtures: [data/v1/services.json]
`)

	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.ValidateFile(path))
}
