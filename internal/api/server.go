// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the GMAO service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"gmao/internal/api/handler/v1handler"
	"gmao/internal/api/specs/v1specs"
	"gmao/internal/config"
	"gmao/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// HealthPath is where the liveness probe is served.
const HealthPath = "/healthz"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

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
	// RequestTimeout bounds the context of every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps

	// HealthProbe backs HealthPath. A nil probe always reports healthy.
	HealthProbe func(ctx context.Context) error
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes backed by v1specs and handlers
// - health probe and pprof endpoints
// It also wraps the mux with timeout, CORS, recovery and logging middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"GMAO",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Srv, err := v1specs.NewServer(v1handler.New(deps.Deps),
		secHandler,
		v1specs.WithMeterProvider(mp),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	// health
	mux.Handle(HealthPath, controller.Health(deps.HealthProbe))

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	// timeout
	handler := controller.WithTimeout(opts.RequestTimeout)(mux)

	// cors
	handler = controller.WithCORS(handler)

	// recovery
	handler = controller.WithRecovery(handler)

	// logger
	handler = controller.WithLogger(handler)

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
