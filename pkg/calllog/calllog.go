// Package calllog instruments every simulated backend call: it assigns a
// correlation id, snapshots the request and response payloads, applies the
// configured cooperative latency and records the actual elapsed time. It is
// diagnostic only and never alters what a call returns.
package calllog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ediworks-controlplane/pkg/config"
)

var (
	callsTotal  = promauto.NewCounter(prometheus.CounterOpts{Name: "console_calls_total"})
	callErrors  = promauto.NewCounter(prometheus.CounterOpts{Name: "console_call_errors_total"})
	callLatency = promauto.NewHistogram(prometheus.HistogramOpts{Name: "console_call_duration_seconds"})
)

// maxEntries bounds the in-memory ring; older entries are discarded.
const maxEntries = 50

type Entry struct {
	Timestamp    time.Time   `json:"timestamp"`
	Method       string      `json:"method"`
	Endpoint     string      `json:"endpoint"`
	RequestID    string      `json:"requestId"`
	RequestBody  interface{} `json:"requestBody,omitempty"`
	ResponseData interface{} `json:"responseData,omitempty"`
	ResponseTime int64       `json:"responseTime"` // milliseconds
	Status       string      `json:"status"`       // success | error
	Error        string      `json:"error,omitempty"`
}

type Summary struct {
	Total      int            `json:"total"`
	Succeeded  int            `json:"succeeded"`
	Failed     int            `json:"failed"`
	AvgMillis  float64        `json:"avgMillis"`
	ByEndpoint map[string]int `json:"byEndpoint"`
}

type Logger struct {
	node    *snowflake.Node
	latency time.Duration

	mu      sync.Mutex
	entries []Entry
	enabled bool
}

var Module = fx.Module("calllog",
	fx.Provide(NewLogger),
)

type Params struct {
	fx.In
	Node *snowflake.Node
	Cfg  *config.Config
}

func NewLogger(p Params) *Logger {
	return &Logger{
		node:    p.Node,
		latency: p.Cfg.Simulation.Latency,
		enabled: true,
	}
}

func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Begin records the request side of a simulated call and returns the
// completion to invoke with the eventual result. The completion applies the
// simulated latency, so the elapsed time it records includes the delay the
// logger itself introduces, and nothing else is slowed down before the
// operation has already run to completion.
func (l *Logger) Begin(method, endpoint string, requestBody interface{}) func(response interface{}, err error) {
	start := time.Now()
	requestID := "req-" + l.node.Generate().String()

	if l.Enabled() {
		zap.L().Debug("api request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Any("request_body", requestBody),
		)
	}

	return func(response interface{}, err error) {
		if l.latency > 0 {
			time.Sleep(l.latency)
		}

		elapsed := time.Since(start)
		callsTotal.Inc()
		callLatency.Observe(elapsed.Seconds())

		entry := Entry{
			Timestamp:    time.Now(),
			Method:       method,
			Endpoint:     endpoint,
			RequestID:    requestID,
			RequestBody:  snapshot(requestBody),
			ResponseTime: elapsed.Milliseconds(),
			Status:       "success",
		}

		if err != nil {
			callErrors.Inc()
			entry.Status = "error"
			entry.Error = err.Error()
		} else {
			entry.ResponseData = snapshot(response)
		}

		l.append(entry)

		if l.Enabled() {
			zap.L().Debug("api response",
				zap.String("request_id", requestID),
				zap.String("status", entry.Status),
				zap.Int64("response_time_ms", entry.ResponseTime),
			)
		}
	}
}

func (l *Logger) append(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
}

func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *Logger) Summarize() Summary {
	entries := l.Entries()

	s := Summary{
		Total:      len(entries),
		ByEndpoint: make(map[string]int),
	}

	var totalMillis int64
	for _, e := range entries {
		if e.Status == "success" {
			s.Succeeded++
		} else {
			s.Failed++
		}
		totalMillis += e.ResponseTime
		s.ByEndpoint[e.Endpoint]++
	}

	if len(entries) > 0 {
		s.AvgMillis = float64(totalMillis) / float64(len(entries))
	}

	return s
}

// Export renders the retained entries as indented JSON for copy-out.
func (l *Logger) Export() (string, error) {
	payload := struct {
		ExportTime time.Time `json:"exportTime"`
		TotalLogs  int       `json:"totalLogs"`
		Logs       []Entry   `json:"logs"`
	}{
		ExportTime: time.Now(),
		Logs:       l.Entries(),
	}
	payload.TotalLogs = len(payload.Logs)

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// snapshot deep-copies a payload through JSON so later mutation of the live
// value cannot rewrite history.
func snapshot(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
