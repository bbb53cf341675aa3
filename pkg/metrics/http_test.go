package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"deal_factory/pkg/metrics"
)

func TestHTTPCollector(t *testing.T) {
	r := require.New(t)

	reg := prometheus.NewRegistry()
	collector := metrics.NewHTTPCollector("test", reg)

	router := chi.NewRouter()
	router.Use(collector.Middleware)
	router.Get("/properties/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/properties/a", "/properties/b", "/", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	expected := `
# HELP test_http_requests_total HTTP requests by route, method and status.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/",status="200"} 1
test_http_requests_total{method="GET",route="/properties/{id}",status="404"} 2
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	r.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))
}
