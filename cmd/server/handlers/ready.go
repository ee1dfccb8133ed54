package handlers

import (
	"context"
	"net/http"

	"github.com/hairizuanbinnoorazman/coffee-shop/health"
	"github.com/hairizuanbinnoorazman/coffee-shop/metrics"
)

// ReadinessChecker produces the report served to readiness probes.
type ReadinessChecker interface {
	Report(ctx context.Context) health.Report
}

// ReadinessHandler serves readiness probes.
type ReadinessHandler struct {
	Checker ReadinessChecker
	Metrics *metrics.Collector
}

// ServeHTTP handles GET on the readiness path.
func (h *ReadinessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := h.Checker.Report(r.Context())
	if h.Metrics != nil {
		h.Metrics.ObserveReadiness(report)
	}
	respondJSON(w, reportStatusCode(report), report)
}
