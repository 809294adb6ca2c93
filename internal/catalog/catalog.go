// Package catalog implements the versioned service-catalogue engine: schema
// registration and validation, fixture loading into immutable datasets, and
// the filter/sort/paginate query path over them.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/surfeosc/catalogd/internal/output"
)

// LatestAlias resolves to the pinned newest catalogue version.
const LatestAlias = "latest"

var versionPattern = regexp.MustCompile(`^v(\d+)$`)

// VersionSource names the inputs for one catalogue version: the schema file
// and the ordered fixture files validated against it.
type VersionSource struct {
	Version  string
	Schema   string
	Fixtures []string
}

// Catalog is the fully loaded, read-only service catalogue: one schema and one
// dataset per version, plus the latest pin. Build is the only constructor;
// once built, every method is safe for concurrent use.
type Catalog struct {
	registry *SchemaRegistry
	datasets map[string]*Dataset
	versions []string
	latest   string
}

// Build loads every configured version and fails on the first problem, so a
// catalogue that starts serving is known to be fully valid.
func Build(sources []VersionSource, latest string) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, configErrorf("no catalogue versions configured")
	}

	registry := NewSchemaRegistry()
	datasets := map[string]*Dataset{}

	for _, src := range sources {
		if !versionPattern.MatchString(src.Version) {
			return nil, configErrorf("version %q does not match v<number>", src.Version)
		}

		raw, err := os.ReadFile(src.Schema)
		if err != nil {
			return nil, configErrorf("schema for version %s: %v", src.Version, err)
		}
		if err := registry.Register(src.Version, raw); err != nil {
			return nil, err
		}

		entry, err := registry.Get(src.Version)
		if err != nil {
			return nil, err
		}

		ds, err := NewFixtureLoader(entry).Load(src.Version, src.Fixtures)
		if err != nil {
			return nil, err
		}
		datasets[src.Version] = ds
	}

	versions := make([]string, 0, len(datasets))
	for v := range datasets {
		versions = append(versions, v)
	}
	sortVersions(versions)

	if latest == "" {
		latest = versions[len(versions)-1]
	} else if _, ok := datasets[latest]; !ok {
		return nil, configErrorf("latest pin %q is not a configured version", latest)
	}

	output.Debug("Catalogue built", "versions", len(versions), "latest", latest)

	return &Catalog{
		registry: registry,
		datasets: datasets,
		versions: versions,
		latest:   latest,
	}, nil
}

// Versions returns the supported version tokens in ascending numeric order.
func (c *Catalog) Versions() []string {
	out := make([]string, len(c.versions))
	copy(out, c.versions)
	return out
}

// Latest returns the version the latest alias points at.
func (c *Catalog) Latest() string {
	return c.latest
}

// Resolve maps a version token (including the latest alias) to its schema
// entry and dataset.
func (c *Catalog) Resolve(token string) (*SchemaEntry, *Dataset, error) {
	version := token
	if version == LatestAlias {
		version = c.latest
	}

	ds, ok := c.datasets[version]
	if !ok {
		return nil, nil, fmt.Errorf("version %q: %w", token, ErrVersionNotFound)
	}

	entry, err := c.registry.Get(version)
	if err != nil {
		return nil, nil, err
	}
	return entry, ds, nil
}

// ListServices runs a paged query against one version's dataset.
func (c *Catalog) ListServices(version string, spec QuerySpec) (*PageResult, error) {
	_, ds, err := c.Resolve(version)
	if err != nil {
		return nil, err
	}
	return Execute(ds, spec)
}

// GetService fetches a single bundle by its (prefix, suffix) key.
func (c *Catalog) GetService(version, prefix, suffix string) (*ServiceBundle, error) {
	_, ds, err := c.Resolve(version)
	if err != nil {
		return nil, err
	}

	b, ok := ds.ByKey(prefix, suffix)
	if !ok {
		return nil, fmt.Errorf("service %s/%s: %w", prefix, suffix, ErrBundleNotFound)
	}
	return b, nil
}

// Schema returns the schema document for a version, byte-for-byte as authored.
func (c *Catalog) Schema(version string) (json.RawMessage, error) {
	entry, _, err := c.Resolve(version)
	if err != nil {
		return nil, err
	}
	return entry.Document(), nil
}

// sortVersions orders tokens by their numeric component, so v10 sorts after
// v2.
func sortVersions(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		return versionNumber(versions[i]) < versionNumber(versions[j])
	})
}

func versionNumber(version string) int {
	m := versionPattern.FindStringSubmatch(version)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
