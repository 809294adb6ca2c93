package server

import (
	"net/http"
)

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	version := r.PathValue("version")

	spec, err := parseQuery(r.URL.Query())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	page, err := s.catalog.ListServices(version, spec)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	version := r.PathValue("version")
	prefix := r.PathValue("prefix")
	suffix := r.PathValue("suffix")

	bundle, err := s.catalog.GetService(version, prefix, suffix)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}
