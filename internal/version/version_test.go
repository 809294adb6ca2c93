package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	// Verify struct is populated
	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.SchemaDraft, "SchemaDraft should be populated")
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
}

func TestSchemaDraft(t *testing.T) {
	// The catalogue schemas are authored against this draft; the registry
	// compiles with it as the default.
	assert.Equal(t, "2020-12", SchemaDraft)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:     "v1.0.0",
		GitCommit:   "abc123",
		BuildDate:   "2026-01-29",
		GoVersion:   "go1.25",
		SchemaDraft: "2020-12",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "2020-12")
}
