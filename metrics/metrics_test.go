package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/coffee-shop/health"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveReadiness(t *testing.T) {
	c := NewCollector("dev", "abc")

	c.ObserveReadiness(health.NewReport(health.Status{Name: "coffee-shop", State: health.StateUp}))
	c.ObserveReadiness(health.NewReport(health.Status{Name: "coffee-shop", State: health.StateUp}))

	got := testutil.ToFloat64(c.readinessChecks.WithLabelValues("coffee-shop", "UP"))
	assert.Equal(t, float64(2), got)
}

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	c := NewCollector("dev", "abc")

	router := mux.NewRouter()
	router.Use(c.Middleware())
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods("GET")

	for _, path := range []string{"/items/1", "/items/2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	got := testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("GET", "/items/{id}", "418"))
	assert.Equal(t, float64(2), got)
}

func TestHandler_ExposesServiceInfo(t *testing.T) {
	c := NewCollector("v1.2.3", "deadbeef")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `service_info{commit="deadbeef",version="v1.2.3"} 1`))
}

func TestObserveReadiness_ComponentIsLabelOnly(t *testing.T) {
	c := NewCollector("dev", "abc")

	c.ObserveReadiness(health.NewReport(health.Status{Name: "coffee.shop", State: health.StateUp}))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `readiness_checks_total{component="coffee.shop",status="UP"} 1`)
	assert.NotContains(t, rec.Body.String(), "coffee.shop_")
}

func TestNewCollector_Independent(t *testing.T) {
	// Separate registries, so building twice must not panic on duplicate registration.
	assert.NotPanics(t, func() {
		NewCollector("dev", "a")
		NewCollector("dev", "b")
	})
}
