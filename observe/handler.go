package observe

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// Response is the batch-level completion signal returned to the invoking
// event infrastructure. Per-record outcomes are logged, not returned.
type Response struct {
	OK bool `json:"ok"`
}

// Handler processes one notification batch invocation.
type Handler func(ctx context.Context, event events.S3Event) (Response, error)

// Middleware wraps a Handler with a cross-cutting concern.
type Middleware func(Handler) Handler

// Chain composes middleware around a handler. The first middleware listed
// becomes the outermost wrapper.
func Chain(h Handler, middleware ...Middleware) Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
