package providers

import (
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncCommands(verdict string)
	IncInterviewsStarted()
	IncInterviewsSubmitted()
	IncInterviewsAborted(reason string)
	IncDecisions(action string)
	SetApplicationsOpen(open bool)
	IncHttpRequests(endpoint string, status int)
}

// AppliedCounter is the slice of the application service the metrics
// provider needs for its applied-count gauge.
type AppliedCounter interface {
	AppliedCount() int
}

type MetricsProvider struct {
	commandsTotal       *prometheus.CounterVec
	interviewsStarted   prometheus.Counter
	interviewsSubmitted prometheus.Counter
	interviewsAborted   *prometheus.CounterVec
	decisionsTotal      *prometheus.CounterVec
	applicationsOpen    prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
}

func (m *MetricsProvider) IncCommands(verdict string) {
	m.commandsTotal.WithLabelValues(verdict).Inc()
}

func (m *MetricsProvider) IncInterviewsStarted() {
	m.interviewsStarted.Inc()
}

func (m *MetricsProvider) IncInterviewsSubmitted() {
	m.interviewsSubmitted.Inc()
}

func (m *MetricsProvider) IncInterviewsAborted(reason string) {
	m.interviewsAborted.WithLabelValues(reason).Inc()
}

func (m *MetricsProvider) IncDecisions(action string) {
	m.decisionsTotal.WithLabelValues(action).Inc()
}

func (m *MetricsProvider) SetApplicationsOpen(open bool) {
	if open {
		m.applicationsOpen.Set(1)
	} else {
		m.applicationsOpen.Set(0)
	}
}

func (m *MetricsProvider) IncHttpRequests(endpoint string, status int) {
	m.httpRequestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, counter AppliedCounter) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		commandsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appbot_commands_total",
			Help: "Total number of apply command invocations by verdict",
		}, []string{"verdict"}),

		interviewsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appbot_interviews_started_total",
			Help: "Total number of interviews started",
		}),

		interviewsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appbot_interviews_submitted_total",
			Help: "Total number of interviews fully answered and submitted",
		}),

		interviewsAborted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appbot_interviews_aborted_total",
			Help: "Total number of interviews aborted by reason",
		}, []string{"reason"}),

		decisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appbot_decisions_total",
			Help: "Total number of reviewer decisions by action",
		}, []string{"action"}),

		applicationsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "appbot_applications_open",
			Help: "Whether the application window is currently open",
		}),

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appbot_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "appbot_applied_total",
		Help: "Number of applicants recorded in the current window",
	}, func() float64 {
		return float64(counter.AppliedCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncCommands(_ string)          {}
func (n *noopMetrics) IncInterviewsStarted()         {}
func (n *noopMetrics) IncInterviewsSubmitted()       {}
func (n *noopMetrics) IncInterviewsAborted(_ string) {}
func (n *noopMetrics) IncDecisions(_ string)         {}
func (n *noopMetrics) SetApplicationsOpen(_ bool)    {}

func (n *noopMetrics) IncHttpRequests(_ string, _ int) {}
