package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingsCollectsSpans(t *testing.T) {
	exp, shutdown := Init(true)
	require.NotNil(t, exp)

	ctx, root := Tracer().Start(context.Background(), "scan")
	for i := 0; i < 3; i++ {
		_, span := Tracer().Start(ctx, "count_lines")
		span.End()
	}
	root.End()
	require.NoError(t, shutdown(context.Background()))

	timings := exp.Timings()
	require.Len(t, timings, 2)
	assert.Equal(t, "count_lines", timings[0].Name)
	assert.Equal(t, "scan", timings[1].Name)
	assert.Len(t, exp.Spans(), 4)
}

func TestInitDisabled(t *testing.T) {
	exp, shutdown := Init(false)
	assert.Nil(t, exp)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer().Start(context.Background(), "scan")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}
