package server

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfeosc/catalogd/internal/catalog"
)

func TestParseQuery(t *testing.T) {
	t.Run("defaults on empty query", func(t *testing.T) {
		spec, err := parseQuery(url.Values{})

		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultQuerySpec(), spec)
	})

	t.Run("all parameters", func(t *testing.T) {
		spec, err := parseQuery(url.Values{
			"active":   {"true"},
			"keyword":  {"cloud"},
			"from":     {"10"},
			"quantity": {"25"},
			"order":    {"desc"},
			"sort":     {"abbreviation"},
		})

		require.NoError(t, err)
		require.NotNil(t, spec.Active)
		assert.True(t, *spec.Active)
		assert.Equal(t, "cloud", spec.Keyword)
		assert.Equal(t, 10, spec.From)
		assert.Equal(t, 25, spec.Quantity)
		assert.Equal(t, "desc", spec.Order)
		assert.Equal(t, "abbreviation", spec.Sort)
	})

	t.Run("active false", func(t *testing.T) {
		spec, err := parseQuery(url.Values{"active": {"false"}})

		require.NoError(t, err)
		require.NotNil(t, spec.Active)
		assert.False(t, *spec.Active)
	})

	t.Run("unknown parameters are ignored", func(t *testing.T) {
		spec, err := parseQuery(url.Values{"shape": {"round"}})

		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultQuerySpec(), spec)
	})

	t.Run("malformed values", func(t *testing.T) {
		tests := []struct {
			name  string
			query url.Values
			param string
		}{
			{name: "active", query: url.Values{"active": {"maybe"}}, param: "active"},
			{name: "from", query: url.Values{"from": {"abc"}}, param: "from"},
			{name: "quantity", query: url.Values{"quantity": {"1.5"}}, param: "quantity"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parseQuery(tt.query)

				var invalid *catalog.InvalidParameterError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.param, invalid.Param)
			})
		}
	})

	t.Run("range checks are left to the engine", func(t *testing.T) {
		// parseQuery only rejects shape problems; quantity=0 parses fine here
		// and is rejected by the query engine.
		spec, err := parseQuery(url.Values{"quantity": {"0"}})

		require.NoError(t, err)
		assert.Equal(t, 0, spec.Quantity)
	})
}
