package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/surfeosc/catalogd/internal/catalog"
	"github.com/surfeosc/catalogd/internal/output"
)

// apiError is the wire shape of every error response.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, e apiError) {
	output.Debug("API error", "status", status, "code", e.Code, "message", e.Message)
	writeJSON(w, status, e)
}

// writeCatalogError maps catalogue errors onto HTTP statuses. Anything outside
// the known client errors is a 500 with the detail kept server-side.
func writeCatalogError(w http.ResponseWriter, err error) {
	var invalid *catalog.InvalidParameterError

	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, apiError{Code: "invalid_parameter", Message: invalid.Error()})
	case errors.Is(err, catalog.ErrVersionNotFound):
		writeError(w, http.StatusNotFound, apiError{Code: "version_not_found", Message: err.Error()})
	case errors.Is(err, catalog.ErrBundleNotFound):
		writeError(w, http.StatusNotFound, apiError{Code: "service_not_found", Message: err.Error()})
	default:
		output.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, apiError{Code: "internal", Message: "internal server error"})
	}
}
