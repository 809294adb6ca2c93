package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Sort fields accepted by Execute.
const (
	SortName            = "name"
	SortAbbreviation    = "abbreviation"
	SortLifeCycleStatus = "lifeCycleStatus"
)

// Sort directions accepted by Execute.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination bounds.
const (
	DefaultQuantity = 10
	MaxQuantity     = 100
)

var sortFields = map[string]bool{
	SortName:            true,
	SortAbbreviation:    true,
	SortLifeCycleStatus: true,
}

// QuerySpec captures one list query. The zero value is not usable; start from
// DefaultQuerySpec and override.
type QuerySpec struct {
	// Active filters on the bundle's active flag when non-nil.
	Active *bool
	// Keyword is matched case-insensitively as a substring of the name,
	// description, tagline, and tags. Whitespace-only means no filter.
	Keyword string
	// From is the number of matches to skip.
	From int
	// Quantity is the page size, 1 through MaxQuantity.
	Quantity int
	// Order is OrderAsc or OrderDesc.
	Order string
	// Sort is one of the Sort* fields.
	Sort string
}

// DefaultQuerySpec returns the query the service runs when the caller asks for
// nothing in particular: first page of ten, by name, ascending.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{
		From:     0,
		Quantity: DefaultQuantity,
		Order:    OrderAsc,
		Sort:     SortName,
	}
}

func (s QuerySpec) validate() error {
	if s.From < 0 {
		return &InvalidParameterError{Param: "from", Reason: "must be zero or positive"}
	}
	if s.Quantity < 1 || s.Quantity > MaxQuantity {
		return &InvalidParameterError{
			Param:  "quantity",
			Reason: fmt.Sprintf("must be between 1 and %d", MaxQuantity),
		}
	}
	if s.Order != OrderAsc && s.Order != OrderDesc {
		return &InvalidParameterError{Param: "order", Reason: `must be "asc" or "desc"`}
	}
	if !sortFields[s.Sort] {
		return &InvalidParameterError{
			Param:  "sort",
			Reason: fmt.Sprintf("unsupported field %q, allowed: %s, %s, %s", s.Sort, SortAbbreviation, SortLifeCycleStatus, SortName),
		}
	}
	return nil
}

// PageResult is one page of query results. Quantity is the number of items
// actually on the page, which on the last page can be less than asked for.
type PageResult struct {
	Items    []*ServiceBundle `json:"items"`
	Total    int              `json:"total"`
	From     int              `json:"from"`
	Quantity int              `json:"quantity"`
	Order    string           `json:"order"`
	Sort     string           `json:"sort"`
}

// Execute runs filter, sort, and paginate over the dataset, in that order.
// Total counts matches before pagination. The dataset is never mutated; the
// result holds pointers into it.
func Execute(ds *Dataset, spec QuerySpec) (*PageResult, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(spec.Keyword))

	var matched []*ServiceBundle
	for _, b := range ds.Bundles() {
		if !b.matchesActive(spec.Active) {
			continue
		}
		if !b.matchesKeyword(needle) {
			continue
		}
		matched = append(matched, b)
	}

	sortBundles(matched, spec.Sort, spec.Order)
	page := clip(matched, spec.From, spec.Quantity)

	return &PageResult{
		Items:    page,
		Total:    len(matched),
		From:     spec.From,
		Quantity: len(page),
		Order:    spec.Order,
		Sort:     spec.Sort,
	}, nil
}

// sortBundles orders bundles by the lowercased sort field. The sort is stable,
// so records with equal keys keep their fixture order, and descending flips
// the comparison rather than reversing the slice to preserve that tie
// behavior.
func sortBundles(bundles []*ServiceBundle, field, order string) {
	desc := order == OrderDesc
	sort.SliceStable(bundles, func(i, j int) bool {
		a := strings.ToLower(bundles[i].sortValue(field))
		b := strings.ToLower(bundles[j].sortValue(field))
		if desc {
			return a > b
		}
		return a < b
	})
}

// clip returns the [from, from+quantity) window. A window past the end is an
// empty page, never an error.
func clip(bundles []*ServiceBundle, from, quantity int) []*ServiceBundle {
	if from >= len(bundles) {
		return []*ServiceBundle{}
	}
	end := from + quantity
	if end > len(bundles) {
		end = len(bundles)
	}
	return bundles[from:end]
}
