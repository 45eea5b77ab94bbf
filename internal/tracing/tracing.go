package tracing

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type CollectingExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
}

func (e *CollectingExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	e.spans = append(e.spans, spans...)
	e.mu.Unlock()
	return nil
}

func (e *CollectingExporter) Shutdown(_ context.Context) error { return nil }

func (e *CollectingExporter) Spans() []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sdktrace.ReadOnlySpan(nil), e.spans...)
}

// Timing is the wall time of one finished span.
type Timing struct {
	Name     string
	Duration time.Duration
}

// Timings sums span durations by name, in first-seen order.
func (e *CollectingExporter) Timings() []Timing {
	var out []Timing
	index := make(map[string]int)
	for _, s := range e.Spans() {
		d := s.EndTime().Sub(s.StartTime())
		if i, ok := index[s.Name()]; ok {
			out[i].Duration += d
			continue
		}
		index[s.Name()] = len(out)
		out = append(out, Timing{Name: s.Name(), Duration: d})
	}
	return out
}

func Init(enabled bool) (*CollectingExporter, func(context.Context) error) {
	if !enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return nil, func(context.Context) error { return nil }
	}

	exp := &CollectingExporter{}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)),
	)
	otel.SetTracerProvider(tp)
	return exp, tp.Shutdown
}

func Tracer() trace.Tracer {
	return otel.Tracer("projstats")
}
