package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	applied   int
	lastReset *time.Time
}

func (m *mockService) Restore() error                           { return nil }
func (m *mockService) Persist() error                           { return nil }
func (m *mockService) BeginInterview(_ string) bool             { return true }
func (m *mockService) EndInterview(_ string)                    {}
func (m *mockService) RecordApplication(_ string, _ bool) error { return nil }
func (m *mockService) ResetWindow(_ time.Time) (bool, error)    { return false, nil }
func (m *mockService) AppliedCount() int                        { return m.applied }
func (m *mockService) LastReset() *time.Time                    { return m.lastReset }

func (m *mockService) Eligibility(_ string, _, _ bool) services.Verdict {
	return services.VerdictEligible
}

type mockScheduler struct {
	open bool
}

func (m *mockScheduler) Init()      {}
func (m *mockScheduler) Stop()      {}
func (m *mockScheduler) Open() bool { return m.open }

func TestAlive_ReturnsPlaintext(t *testing.T) {
	hc := NewHealthController(&mockService{}, &mockScheduler{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	hc.Alive(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bot is alive!", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestAlive_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(&mockService{}, &mockScheduler{})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	hc.Alive(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_ReturnsOK(t *testing.T) {
	hc := NewHealthController(&mockService{applied: 3}, &mockScheduler{open: true})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(3), resp["applied"])
	assert.Equal(t, true, resp["applications_open"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(&mockService{}, &mockScheduler{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
