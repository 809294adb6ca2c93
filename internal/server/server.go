// Package server exposes the loaded catalogue over HTTP. Every endpoint is
// read-only; the interesting work happened at startup when the catalogue was
// built.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/surfeosc/catalogd/internal/catalog"
	"github.com/surfeosc/catalogd/internal/output"
)

// Options configures the HTTP surface.
type Options struct {
	// CORSOrigin is served as Access-Control-Allow-Origin on every response.
	CORSOrigin string
}

// Server routes catalogue requests. Construct with New; the zero value is not
// usable.
type Server struct {
	catalog    *catalog.Catalog
	corsOrigin string
	handler    http.Handler
}

// New builds a server around an already-loaded catalogue.
func New(cat *catalog.Catalog, opts Options) *Server {
	s := &Server{
		catalog:    cat,
		corsOrigin: opts.CORSOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/versions", s.handleVersions)
	mux.HandleFunc("GET /api/{version}/services", s.handleListServices)
	mux.HandleFunc("GET /api/{version}/services/{prefix}/{suffix}", s.handleGetService)
	mux.HandleFunc("GET /api/{version}/schema", s.handleSchema)

	s.handler = s.withAccessLog(s.withCORS(mux))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until the context is canceled, then drains in-flight requests
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, listen string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		output.Info("Catalogue API listening",
			"addr", listen,
			"versions", s.catalog.Versions(),
			"latest", s.catalog.Latest(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	output.Info("Shutting down", "timeout", shutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
