package core

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

var expvarSeq uint64

// ExpvarMetricsRecorder aggregates per-operation totals and publishes them
// through expvar under its name.
type ExpvarMetricsRecorder struct {
	name string

	mu         sync.Mutex
	durations  map[string]time.Duration
	successes  map[string]int64
	failures   map[string]int64
	lastResult map[string]time.Time
}

// OperationMetrics is the published view of one operation.
type OperationMetrics struct {
	TotalMS   float64   `json:"total_ms"`
	Successes int64     `json:"successes"`
	Failures  int64     `json:"failures"`
	LastSeen  time.Time `json:"last_seen"`
}

// NewExpvarMetricsRecorder publishes a recorder under name, or under a
// generated omemeta_metrics_<n> name when empty. expvar names are process
// global; publishing the same name twice panics.
func NewExpvarMetricsRecorder(name string) *ExpvarMetricsRecorder {
	if name == "" {
		name = fmt.Sprintf("omemeta_metrics_%d", atomic.AddUint64(&expvarSeq, 1))
	}
	rec := &ExpvarMetricsRecorder{
		name:       name,
		durations:  make(map[string]time.Duration),
		successes:  make(map[string]int64),
		failures:   make(map[string]int64),
		lastResult: make(map[string]time.Time),
	}
	expvar.Publish(name, expvar.Func(func() any { return rec.Snapshot() }))
	return rec
}

// Name returns the expvar name.
func (r *ExpvarMetricsRecorder) Name() string { return r.name }

// Observe implements MetricsRecorder.
func (r *ExpvarMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations[operation] += duration
	if success {
		r.successes[operation]++
	} else {
		r.failures[operation]++
	}
	r.lastResult[operation] = time.Now().UTC()
}

// Snapshot copies the aggregated metrics keyed by operation.
func (r *ExpvarMetricsRecorder) Snapshot() map[string]OperationMetrics {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]OperationMetrics, len(r.durations))
	for op, total := range r.durations {
		out[op] = OperationMetrics{
			TotalMS:   float64(total) / float64(time.Millisecond),
			Successes: r.successes[op],
			Failures:  r.failures[op],
			LastSeen:  r.lastResult[op],
		}
	}
	return out
}

// SpanRecord is one finished span of a JSONTracer.
type SpanRecord struct {
	Operation  string    `json:"operation"`
	OK         bool      `json:"ok"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS float64   `json:"duration_ms"`
}

// JSONTracer writes finished spans as JSON lines and keeps them in memory.
type JSONTracer struct {
	mu    sync.Mutex
	spans []SpanRecord
	enc   *json.Encoder
}

// NewJSONTracer returns a tracer writing to w. A nil writer only retains spans.
func NewJSONTracer(w io.Writer) *JSONTracer {
	t := &JSONTracer{}
	if w != nil {
		t.enc = json.NewEncoder(w)
	}
	return t
}

// Spans returns a copy of the finished spans.
func (t *JSONTracer) Spans() []SpanRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SpanRecord(nil), t.spans...)
}

// Start implements Tracer.
func (t *JSONTracer) Start(ctx context.Context, operation string) (context.Context, TraceSpan) {
	return ctx, &jsonSpan{tracer: t, operation: operation, started: time.Now().UTC()}
}

type jsonSpan struct {
	tracer    *JSONTracer
	operation string
	started   time.Time
	once      sync.Once
}

func (s *jsonSpan) End(err error) {
	s.once.Do(func() {
		rec := SpanRecord{
			Operation:  s.operation,
			OK:         err == nil,
			StartedAt:  s.started,
			DurationMS: float64(time.Since(s.started)) / float64(time.Millisecond),
		}
		if err != nil {
			rec.Error = err.Error()
		}
		s.tracer.mu.Lock()
		defer s.tracer.mu.Unlock()
		s.tracer.spans = append(s.tracer.spans, rec)
		if s.tracer.enc != nil {
			_ = s.tracer.enc.Encode(rec)
		}
	})
}
