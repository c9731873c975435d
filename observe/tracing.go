package observe

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WithTracing wraps a handler in one span per invocation, recording the
// batch size and outcome.
func WithTracing(tracer trace.Tracer) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, event events.S3Event) (Response, error) {
			ctx, span := tracer.Start(ctx, "docingest.dispatch",
				trace.WithAttributes(attribute.Int("batch.records", len(event.Records))))
			defer span.End()

			resp, err := next(ctx, event)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return resp, err
			}

			span.SetAttributes(attribute.Bool("batch.ok", resp.OK))
			return resp, nil
		}
	}
}
