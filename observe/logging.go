// Copyright 2026 Inkwell AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package observe

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

// WithLogging wraps a handler with a structured entry/exit log. Each
// invocation is tagged with the runtime request id and a generated trace
// root so log lines from one batch can be correlated.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, event events.S3Event) (Response, error) {
			log := logger
			if lc, ok := lambdacontext.FromContext(ctx); ok {
				log = log.With("requestId", lc.AwsRequestID)
			}
			log = log.With("traceRoot", traceRootID())

			start := time.Now()
			log.Info("notification batch received", "records", len(event.Records))

			resp, err := next(ctx, event)

			if err != nil {
				log.Error("invocation failed", "err", err, "duration", time.Since(start))
				return resp, err
			}
			log.Info("invocation complete", "ok", resp.OK, "duration", time.Since(start))
			return resp, nil
		}
	}
}

// traceRootID generates an X-Ray style trace root for log correlation.
func traceRootID() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "Root=1-" + a[:8] + "-" + b[:24]
}
