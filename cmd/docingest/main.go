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


// Command docingest is the Lambda entrypoint reacting to object-creation
// notifications on the media bucket and forwarding each object reference to
// the knowledge-base ingestion service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/inkwell-ai/docingest/config"
	"github.com/inkwell-ai/docingest/dispatch"
	"github.com/inkwell-ai/docingest/kb"
	"github.com/inkwell-ai/docingest/kb/bedrock"
	"github.com/inkwell-ai/docingest/notify"
	"github.com/inkwell-ai/docingest/observe"
	s3store "github.com/inkwell-ai/docingest/storage/s3"
)

func main() {
	handler, err := setup(context.Background())
	if err != nil {
		// Missing configuration is fatal before any processing begins.
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	lambda.Start(handler)
}

// setup performs the cold-start initialization: configuration, logging,
// AWS clients, dispatcher, and the instrumentation chain.
func setup(ctx context.Context) (observe.Handler, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("service", cfg.ServiceName)
	slog.SetDefault(logger)
	logger.Info("cold start", "bucket", cfg.MediaBucket, "knowledgeBaseId", cfg.KnowledgeBaseID)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	ingestor, err := bedrock.NewIngestor(bedrockagent.NewFromConfig(awsCfg), kb.Config{
		KnowledgeBaseID: cfg.KnowledgeBaseID,
		DataSourceID:    cfg.DataSourceID,
	})
	if err != nil {
		return nil, err
	}

	opts := []dispatch.Option{dispatch.WithLogger(logger)}
	if cfg.ProbeObjects {
		store, err := s3store.NewStore(awss3.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
		opts = append(opts, dispatch.WithObjectProbe(store))
	}

	dispatcher, err := dispatch.NewDispatcher(cfg.MediaBucket, ingestor, opts...)
	if err != nil {
		return nil, err
	}

	exporter, err := stdouttrace.New()
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)).Tracer("docingest")
	metrics := observe.NewMetrics("docingest", cfg.ServiceName, os.Stdout)

	handle := func(ctx context.Context, event events.S3Event) (observe.Response, error) {
		summary := dispatcher.Dispatch(ctx, notify.FromS3Event(event))
		logger.Info("batch dispatched",
			"total", summary.Total,
			"submitted", summary.Submitted,
			"skipped", summary.Skipped,
			"failed", summary.Failed)
		return observe.Response{OK: true}, nil
	}

	return observe.Chain(handle,
		observe.WithLogging(logger),
		observe.WithTracing(tracer),
		observe.WithColdStartMetric(metrics),
	), nil
}
