package server

import (
	"net/url"
	"strconv"

	"github.com/surfeosc/catalogd/internal/catalog"
)

// parseQuery maps list-endpoint query parameters onto a QuerySpec. Unknown
// parameters are ignored; malformed values for known parameters are client
// errors. Range and vocabulary checks belong to the query engine, so only
// shape problems are rejected here.
func parseQuery(values url.Values) (catalog.QuerySpec, error) {
	spec := catalog.DefaultQuerySpec()

	if raw := values.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return spec, &catalog.InvalidParameterError{Param: "active", Reason: "must be true or false"}
		}
		spec.Active = &active
	}

	if raw := values.Get("keyword"); raw != "" {
		spec.Keyword = raw
	}

	if raw := values.Get("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil {
			return spec, &catalog.InvalidParameterError{Param: "from", Reason: "must be an integer"}
		}
		spec.From = from
	}

	if raw := values.Get("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return spec, &catalog.InvalidParameterError{Param: "quantity", Reason: "must be an integer"}
		}
		spec.Quantity = quantity
	}

	if raw := values.Get("order"); raw != "" {
		spec.Order = raw
	}

	if raw := values.Get("sort"); raw != "" {
		spec.Sort = raw
	}

	return spec, nil
}
