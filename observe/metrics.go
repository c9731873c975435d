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
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// Metrics emits CloudWatch embedded-metric-format documents. Each document
// is one JSON line on the writer; the Lambda runtime forwards stdout to
// CloudWatch Logs, where the metrics are extracted.
type Metrics struct {
	namespace string
	service   string

	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewMetrics creates an emitter for the given namespace and service
// dimension, writing to w.
func NewMetrics(namespace, service string, w io.Writer) *Metrics {
	return &Metrics{
		namespace: namespace,
		service:   service,
		w:         w,
		now:       time.Now,
	}
}

// Count emits a single Count-unit metric value.
func (m *Metrics) Count(name string, value float64) error {
	doc := map[string]any{
		"_aws": map[string]any{
			"Timestamp": m.now().UnixMilli(),
			"CloudWatchMetrics": []map[string]any{
				{
					"Namespace":  m.namespace,
					"Dimensions": [][]string{{"service"}},
					"Metrics":    []map[string]any{{"Name": name, "Unit": "Count"}},
				},
			},
		},
		"service": m.service,
		name:      value,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	enc := json.NewEncoder(m.w)
	return enc.Encode(doc)
}

// WithColdStartMetric emits a ColdStart metric on the first invocation of
// the wrapped handler. Subsequent invocations in the same process emit
// nothing.
func WithColdStartMetric(metrics *Metrics) Middleware {
	var once sync.Once
	return func(next Handler) Handler {
		return func(ctx context.Context, event events.S3Event) (Response, error) {
			once.Do(func() {
				// Emission failure must not affect the invocation.
				_ = metrics.Count("ColdStart", 1)
			})
			return next(ctx, event)
		}
	}
}
