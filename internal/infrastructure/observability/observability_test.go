package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	otellog "go.opentelemetry.io/otel/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestOtelSeverity(t *testing.T) {
	assert.Equal(t, otellog.SeverityInfo, otelSeverity(zerolog.InfoLevel))
	assert.Equal(t, otellog.SeverityWarn, otelSeverity(zerolog.WarnLevel))
	assert.Equal(t, otellog.SeverityError, otelSeverity(zerolog.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, otelSeverity(zerolog.PanicLevel))
	assert.Equal(t, otellog.SeverityUndefined, otelSeverity(zerolog.NoLevel))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordCacheLookup(ctx, true)
		m.RecordImageLookup(ctx, "pexels", "found")
		m.RecordAlert(ctx, false)
	})
}

func TestInitMetrics(t *testing.T) {
	m, err := InitMetrics()
	assert.NoError(t, err)
	assert.NotPanics(t, func() {
		m.RecordCacheLookup(context.Background(), false)
		RecordRequestMetric(context.Background(), m, "GET", "GET /api/remedies", 200, 0)
	})
}
