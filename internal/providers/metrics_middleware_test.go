package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingMetrics struct {
	noopMetrics
	requests map[string]int
	statuses map[string]int
}

func (c *countingMetrics) IncHttpRequests(endpoint string, status int) {
	if c.requests == nil {
		c.requests = make(map[string]int)
		c.statuses = make(map[string]int)
	}
	c.requests[endpoint]++
	c.statuses[httpStatusBucket(status)]++
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	metrics := &countingMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, metrics.requests["/"])
	assert.Equal(t, 1, metrics.statuses["2xx"])
}

func TestMetricsMiddleware_CapturesStatus(t *testing.T) {
	metrics := &countingMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1, metrics.statuses["4xx"])
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(100))
	assert.Equal(t, "2xx", httpStatusBucket(204))
	assert.Equal(t, "3xx", httpStatusBucket(301))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(503))
}
