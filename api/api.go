// Package api provides an HTTP JSON interface over the registry query
// engine. every operation reads whichever snapshot is published at the
// moment the request starts, so responses are always internally consistent
// even while a refresh runs
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agent-trust/registry/config"
	"github.com/agent-trust/registry/registry"
)

// Server wraps a registry, providing traditional access via http.
// Create one with New, start it up with Serve
type Server struct {
	cfg *config.Config
	reg *registry.Registry
}

// New creates a new registry server from a registry & configuration
func New(reg *registry.Registry, cfg *config.Config) Server {
	return Server{
		cfg: cfg,
		reg: reg,
	}
}

// Serve starts the server. It will block while the server is running
func (s Server) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.API.Port),
		Handler: NewServerRoutes(s.reg),
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		server.Close()
	}()

	// http.ListenAndServe will not return unless there's an error
	return server.ListenAndServe()
}

// NewServerRoutes allocates server handlers along standard routes
func NewServerRoutes(reg *registry.Registry) *http.ServeMux {
	m := http.NewServeMux()

	m.HandleFunc("/health", HealthCheckHandler)
	m.HandleFunc("/info", logReq(NewInfoHandler(reg)))

	m.HandleFunc("/registry/identities", logReq(NewListHandler(reg)))
	m.HandleFunc("/registry/identity/fingerprint/", logReq(NewFingerprintHandler("/registry/identity/fingerprint/", reg)))
	m.HandleFunc("/registry/identity/name/", logReq(NewNameHandler("/registry/identity/name/", reg)))
	m.HandleFunc("/registry/identity/platform/", logReq(NewPlatformHandler("/registry/identity/platform/", reg)))
	m.HandleFunc("/registry/identity/wallet/", logReq(NewWalletHandler("/registry/identity/wallet/", reg)))
	m.HandleFunc("/registry/search", logReq(NewSearchHandler(reg)))
	m.HandleFunc("/registry/stats", logReq(NewStatsHandler(reg)))

	return m
}
