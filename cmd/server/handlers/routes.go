package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/coffee-shop/health"
	"github.com/hairizuanbinnoorazman/coffee-shop/logger"
	"github.com/hairizuanbinnoorazman/coffee-shop/metrics"
)

const (
	// ReadyzAlias is always served alongside the configured readiness path.
	ReadyzAlias = "/readyz"

	// VersionPath serves build information.
	VersionPath = "/version"
)

// Routes is everything the router needs at startup.
type Routes struct {
	ReadinessPath string
	LivenessPath  string
	MetricsPath   string

	Readiness *health.Readiness
	Metrics   *metrics.Collector // nil disables /metrics and request metrics
	Logger    logger.Logger
	Build     BuildInfo
}

// NewRouter builds a router with middleware and every route registered.
func NewRouter(rt Routes) *mux.Router {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	// Recovery is innermost so a panic is still logged and counted as a 500.
	router.Use(RequestID())
	router.Use(RequestLogger(rt.Logger, rt.ReadinessPath, ReadyzAlias, rt.LivenessPath))
	if rt.Metrics != nil {
		router.Use(rt.Metrics.Middleware())
	}
	router.Use(Recovery(rt.Logger))

	RegisterRoutes(router, rt)
	return router
}

// RegisterRoutes registers the probe, version and metrics endpoints.
func RegisterRoutes(router *mux.Router, rt Routes) {
	ready := &ReadinessHandler{Checker: rt.Readiness, Metrics: rt.Metrics}

	router.Handle(rt.ReadinessPath, ready).Methods("GET")
	if rt.ReadinessPath != ReadyzAlias {
		router.Handle(ReadyzAlias, ready).Methods("GET")
	}
	router.HandleFunc(rt.LivenessPath, LivenessHandler).Methods("GET")
	router.HandleFunc(VersionPath, VersionHandler(rt.Build)).Methods("GET")

	if rt.Metrics != nil && rt.MetricsPath != "" {
		router.Handle(rt.MetricsPath, rt.Metrics.Handler()).Methods("GET")
	}
}
