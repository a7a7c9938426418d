// Package server assembles the HTTP handler: chi router, middleware stack,
// Huma API and route registration.
package server

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/composeapps/web-app/internal/http/health"
	"github.com/composeapps/web-app/internal/http/items"
	"github.com/composeapps/web-app/internal/http/root"
	"github.com/composeapps/web-app/internal/platform/config"
	applog "github.com/composeapps/web-app/internal/platform/logging"
	"github.com/composeapps/web-app/internal/platform/metrics"
	appmiddleware "github.com/composeapps/web-app/internal/platform/middleware"
	"github.com/composeapps/web-app/internal/platform/respond"
)

const (
	apiTitle    = "Web App"
	docsPath    = "/docs"
	openAPIPath = "/openapi"

	// maxBodyBytes limits request bodies; every route is a GET.
	maxBodyBytes = 1 << 20
)

// Server is the application's HTTP handler together with the metadata
// derived from configuration.
type Server struct {
	cfg      *config.Config
	rootPath string
	router   chi.Router
	api      huma.API
	metrics  *metrics.Manager
}

// New builds the router for cfg. version is reported in the OpenAPI info.
func New(cfg *config.Config, version string) *Server {
	s := &Server{
		cfg:      cfg,
		rootPath: cfg.RootPath(),
		router:   chi.NewRouter(),
		metrics:  metrics.NewManager(metrics.WithConstLabels(map[string]string{"host": cfg.HostName})),
	}

	s.router.NotFound(respond.NotFoundHandler())
	s.router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	s.router.Use(
		// Strip the proxy prefix first so everything below sees route paths.
		appmiddleware.RootPath(s.rootPath),
		appmiddleware.Security(docsPath, openAPIPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only run behind the proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		s.metrics.Middleware(),
		respond.Recoverer(),
	)

	s.router.Get("/health", health.Handler(s.rootPath))
	s.router.Handle("/metrics", s.metrics.Handler())

	s.api = humachi.New(s.router, s.humaConfig(version))
	root.Register(s.api)
	items.Register(s.api)

	return s
}

func (s *Server) humaConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(apiTitle, version)
	cfg.DocsPath = docsPath
	cfg.OpenAPIPath = openAPIPath
	cfg.Servers = []*huma.Server{{URL: s.rootPath, Description: "Reverse proxy"}}
	// Responses are exactly the documented bodies, without a $schema link.
	cfg.CreateHooks = nil

	cfg.OnAddOperation = append(cfg.OnAddOperation, addCBORContent)
	return cfg
}

// addCBORContent documents application/cbor alongside every JSON body.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// RootPath is the prefix the reverse proxy serves this instance under.
func (s *Server) RootPath() string {
	return s.rootPath
}

// API exposes the Huma API, mainly for its OpenAPI document.
func (s *Server) API() huma.API {
	return s.api
}

// Metrics returns the server's metrics manager.
func (s *Server) Metrics() *metrics.Manager {
	return s.metrics
}

// HTTPServer wraps s in an http.Server listening on the configured address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}
