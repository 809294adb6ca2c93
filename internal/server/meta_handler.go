package server

import (
	"net/http"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// versionsResponse lists the version tokens a client may use in paths.
type versionsResponse struct {
	Versions []string `json:"versions"`
	Latest   string   `json:"latest"`
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, versionsResponse{
		Versions: s.catalog.Versions(),
		Latest:   s.catalog.Latest(),
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	version := r.PathValue("version")

	doc, err := s.catalog.Schema(version)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	// The document is served byte-for-byte as authored, so no re-encoding.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
