package catalog

import (
	"bytes"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInstance(t *testing.T, data string) any {
	t.Helper()

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	return instance
}

func TestBundleValidatorValidate(t *testing.T) {
	validator := NewBundleValidator(testEntry(t))

	t.Run("accepts a conforming record", func(t *testing.T) {
		raw := rawBundle(t, bundleSpec{
			id: "surf/surfdrive", name: "SURFdrive", abbr: "SD",
			desc: "Personal cloud storage.", tagline: "Store and share",
		})

		outcome := validator.Validate(decodeInstance(t, string(raw)))
		assert.True(t, outcome.Valid())
		assert.Empty(t, outcome.Violations)
	})

	t.Run("reports a missing required field with its path", func(t *testing.T) {
		outcome := validator.Validate(decodeInstance(t, `{
			"service": {
				"id": "surf/surfdrive",
				"abbreviation": "SD",
				"description": "Personal cloud storage.",
				"tagline": "Store and share"
			}
		}`))

		require.False(t, outcome.Valid())
		require.Len(t, outcome.Violations, 1)
		assert.Equal(t, "/service", outcome.Violations[0].Path)
		assert.NotEmpty(t, outcome.Violations[0].Message)
	})

	t.Run("reports a nested type violation at the leaf", func(t *testing.T) {
		outcome := validator.Validate(decodeInstance(t, `{
			"service": {
				"id": "surf/surfdrive",
				"name": "SURFdrive",
				"abbreviation": "SD",
				"description": "Personal cloud storage.",
				"tagline": "Store and share",
				"tags": ["ok", 7]
			}
		}`))

		require.False(t, outcome.Valid())
		require.Len(t, outcome.Violations, 1)
		assert.Equal(t, "/service/tags/1", outcome.Violations[0].Path)
	})

	t.Run("reports an id pattern violation", func(t *testing.T) {
		outcome := validator.Validate(decodeInstance(t, `{
			"service": {
				"id": "no-slash-here",
				"name": "SURFdrive",
				"abbreviation": "SD",
				"description": "Personal cloud storage.",
				"tagline": "Store and share"
			}
		}`))

		require.False(t, outcome.Valid())
		require.Len(t, outcome.Violations, 1)
		assert.Equal(t, "/service/id", outcome.Violations[0].Path)
	})

	t.Run("reports a non-object record at the root", func(t *testing.T) {
		outcome := validator.Validate(decodeInstance(t, `"just a string"`))

		require.False(t, outcome.Valid())
		require.NotEmpty(t, outcome.Violations)
		assert.Equal(t, "/", outcome.Violations[0].Path)
	})

	t.Run("collects every leaf cause", func(t *testing.T) {
		outcome := validator.Validate(decodeInstance(t, `{
			"active": "yes",
			"service": {
				"id": "surf/surfdrive",
				"name": 42,
				"abbreviation": "SD",
				"description": "Personal cloud storage.",
				"tagline": "Store and share"
			}
		}`))

		require.False(t, outcome.Valid())
		paths := make([]string, 0, len(outcome.Violations))
		for _, v := range outcome.Violations {
			paths = append(paths, v.Path)
		}
		assert.Contains(t, paths, "/active")
		assert.Contains(t, paths, "/service/name")
	})

	t.Run("never mutates the input record", func(t *testing.T) {
		raw := rawBundle(t, bundleSpec{
			id: "surf/surfdrive", name: "SURFdrive", abbr: "SD",
			desc: "Personal cloud storage.", tagline: "Store and share",
		})
		instance := decodeInstance(t, string(raw))

		before := instance.(map[string]any)["service"].(map[string]any)["name"]
		validator.Validate(instance)
		after := instance.(map[string]any)["service"].(map[string]any)["name"]

		assert.Equal(t, before, after)
	})
}

func TestViolationString(t *testing.T) {
	v := Violation{Path: "/service/name", Message: "got number, want string"}
	assert.Equal(t, "/service/name: got number, want string", v.String())
}
