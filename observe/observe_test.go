package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func okHandler(ctx context.Context, event events.S3Event) (Response, error) {
	return Response{OK: true}, nil
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, event events.S3Event) (Response, error) {
				order = append(order, name)
				return next(ctx, event)
			}
		}
	}

	h := Chain(okHandler, mark("outer"), mark("inner"))
	_, err := h(context.Background(), events.S3Event{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestResponse_Marshal(t *testing.T) {
	data, err := json.Marshal(Response{OK: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestWithLogging_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(okHandler, WithLogging(logger))
	resp, err := h(context.Background(), events.S3Event{Records: make([]events.S3EventRecord, 2)})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Contains(t, buf.String(), "notification batch received")
	assert.Contains(t, buf.String(), "invocation complete")
	assert.Contains(t, buf.String(), "traceRoot")
}

func TestWithLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	failing := func(ctx context.Context, event events.S3Event) (Response, error) {
		return Response{}, errors.New("boom")
	}

	h := Chain(failing, WithLogging(logger))
	_, err := h(context.Background(), events.S3Event{})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "invocation failed")
}

func TestWithTracing_PassesThrough(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")

	h := Chain(okHandler, WithTracing(tracer))
	resp, err := h(context.Background(), events.S3Event{})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestWithColdStartMetric_EmitsOnce(t *testing.T) {
	var buf bytes.Buffer
	metrics := NewMetrics("docingest", "doc-processing", &buf)

	h := Chain(okHandler, WithColdStartMetric(metrics))

	for i := 0; i < 3; i++ {
		_, err := h(context.Background(), events.S3Event{})
		require.NoError(t, err)
	}

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 1, lines, "cold start metric must be emitted exactly once per process")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "_aws")
	assert.Equal(t, float64(1), doc["ColdStart"])
	assert.Equal(t, "doc-processing", doc["service"])
}

func TestMetricsCount_Format(t *testing.T) {
	var buf bytes.Buffer
	metrics := NewMetrics("docingest", "doc-processing", &buf)

	require.NoError(t, metrics.Count("Dispatched", 5))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	aws, ok := doc["_aws"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, aws, "Timestamp")

	cw, ok := aws["CloudWatchMetrics"].([]any)
	require.True(t, ok)
	require.Len(t, cw, 1)

	directive := cw[0].(map[string]any)
	assert.Equal(t, "docingest", directive["Namespace"])
	assert.Equal(t, float64(5), doc["Dispatched"])
}
