// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware for the pet registry service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"petregistry/internal/api/handler/v1handler"
	"petregistry/internal/config"
	"petregistry/pkg/controller"
	"petregistry/pkg/logger"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	healthTimeout = 2 * time.Second
	// timeoutBody is written when RequestTimeout elapses on a /v1 request.
	timeoutBody = `{"message":"request timed out","status":503}`
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of each /v1 API request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts the profiling endpoints under /debug/pprof/.
	Pprof bool
	// CORS configures the cross-origin headers of every response.
	CORS controller.CORSOptions
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
		CORS:              controller.DefaultCORSOptions(),
	}
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Meter receives the HTTP request metrics.
	Meter metric.Meter
	// Gatherer backs the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// Health is checked by /healthz when set.
	Health Pinger
}

// NewHandler builds the root handler:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling, when enabled
// - a health check
// It wraps the router with panic recovery, logging, CORS and request metrics.
// RequestTimeout applies to the v1 API routes only.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(controller.Recover, controller.WithLogger, controller.CORS(opts.CORS))
	if deps.Meter != nil {
		mw, err := controller.WithMetrics(deps.Meter)
		if err != nil {
			return nil, fmt.Errorf("could not create http metrics: %w", err)
		}
		r.Use(mw)
	}

	// prometheus metrics server
	if opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", healthz(deps.Health))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api
	v1 := v1handler.New(deps.Deps)
	r.Route("/v1", func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(controller.WithTimeout(opts.RequestTimeout, timeoutBody))
		}
		v1.Routes(r)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Pet Registry",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	if opts.Pprof {
		r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))
	}

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func healthz(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := p.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)

				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
