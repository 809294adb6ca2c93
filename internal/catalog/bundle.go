package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies a bundle inside one catalogue version.
type Key struct {
	Prefix string
	Suffix string
}

func (k Key) String() string {
	return k.Prefix + "/" + k.Suffix
}

// ServiceBundle is one catalogue record. The typed fields cover only what the
// engine filters, sorts, and indexes on; the full record is kept verbatim and
// is what clients receive, so unmodeled fields survive the round trip
// untouched.
type ServiceBundle struct {
	Active  *bool
	Service ServiceRecord

	raw json.RawMessage
}

// ServiceRecord is the typed view of the nested service object.
type ServiceRecord struct {
	ID              string
	Prefix          string
	Suffix          string
	Name            string
	Abbreviation    string
	Description     string
	Tagline         string
	LifeCycleStatus string
	Tags            []string
}

type bundleEnvelope struct {
	Active  *bool           `json:"active"`
	Service serviceEnvelope `json:"service"`
}

type serviceEnvelope struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Abbreviation    string   `json:"abbreviation"`
	Description     string   `json:"description"`
	Tagline         string   `json:"tagline"`
	LifeCycleStatus string   `json:"lifeCycleStatus"`
	Tags            []string `json:"tags"`
}

// ParseBundle decodes the queryable view of a record while keeping the raw
// bytes. The caller is expected to have schema-validated raw first; parse
// failures here still come back as errors rather than panics.
func ParseBundle(raw json.RawMessage) (*ServiceBundle, error) {
	var env bundleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}

	prefix, suffix, err := SplitServiceID(env.Service.ID)
	if err != nil {
		return nil, err
	}

	kept := make(json.RawMessage, len(raw))
	copy(kept, raw)

	return &ServiceBundle{
		Active: env.Active,
		Service: ServiceRecord{
			ID:              env.Service.ID,
			Prefix:          prefix,
			Suffix:          suffix,
			Name:            env.Service.Name,
			Abbreviation:    env.Service.Abbreviation,
			Description:     env.Service.Description,
			Tagline:         env.Service.Tagline,
			LifeCycleStatus: env.Service.LifeCycleStatus,
			Tags:            env.Service.Tags,
		},
		raw: kept,
	}, nil
}

// SplitServiceID splits a "prefix/suffix" service identifier on its first
// slash. Both parts must be non-empty and the suffix must not contain another
// slash.
func SplitServiceID(id string) (prefix, suffix string, err error) {
	prefix, suffix, ok := strings.Cut(id, "/")
	if !ok || prefix == "" || suffix == "" || strings.Contains(suffix, "/") {
		return "", "", fmt.Errorf("service id %q is not of the form prefix/suffix", id)
	}
	return prefix, suffix, nil
}

// Key returns the bundle's identity within its version.
func (b *ServiceBundle) Key() Key {
	return Key{Prefix: b.Service.Prefix, Suffix: b.Service.Suffix}
}

// MarshalJSON emits the original record bytes, so anything the typed view does
// not model still reaches the client.
func (b *ServiceBundle) MarshalJSON() ([]byte, error) {
	if len(b.raw) == 0 {
		return []byte("null"), nil
	}
	return b.raw, nil
}

// Raw exposes the stored record bytes. Callers must not mutate the result.
func (b *ServiceBundle) Raw() json.RawMessage {
	return b.raw
}

// sortValue returns the bundle's value for a sort field. Unknown fields are
// rejected before sorting, so this only sees the supported set.
func (b *ServiceBundle) sortValue(field string) string {
	switch field {
	case SortAbbreviation:
		return b.Service.Abbreviation
	case SortLifeCycleStatus:
		return b.Service.LifeCycleStatus
	default:
		return b.Service.Name
	}
}

// matchesKeyword reports whether the lowercase needle occurs in the name,
// description, tagline, or any tag. An empty needle matches everything.
func (b *ServiceBundle) matchesKeyword(needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Service.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Service.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Service.Tagline), needle) {
		return true
	}
	for _, tag := range b.Service.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesActive applies the active filter. Records that carry no active flag
// never match an explicit filter, in either direction.
func (b *ServiceBundle) matchesActive(want *bool) bool {
	if want == nil {
		return true
	}
	if b.Active == nil {
		return false
	}
	return *b.Active == *want
}
