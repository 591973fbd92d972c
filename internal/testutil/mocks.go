package testutil

import (
	"sync"

	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// calls per label.
type MockMetrics struct {
	mu           sync.Mutex
	Commands     map[string]int
	Started      int
	Submitted    int
	Aborted      map[string]int
	Decisions    map[string]int
	OpenValues   []bool
	HttpRequests map[string]int
}

func (m *MockMetrics) IncCommands(verdict string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Commands == nil {
		m.Commands = make(map[string]int)
	}
	m.Commands[verdict]++
}

func (m *MockMetrics) IncInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Started++
}

func (m *MockMetrics) IncInterviewsSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Submitted++
}

func (m *MockMetrics) IncInterviewsAborted(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Aborted == nil {
		m.Aborted = make(map[string]int)
	}
	m.Aborted[reason]++
}

func (m *MockMetrics) IncDecisions(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Decisions == nil {
		m.Decisions = make(map[string]int)
	}
	m.Decisions[action]++
}

func (m *MockMetrics) SetApplicationsOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OpenValues = append(m.OpenValues, open)
}

func (m *MockMetrics) IncHttpRequests(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.HttpRequests == nil {
		m.HttpRequests = make(map[string]int)
	}
	m.HttpRequests[endpoint]++
}
