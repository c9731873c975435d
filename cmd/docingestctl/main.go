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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/urfave/cli/v2"

	"github.com/inkwell-ai/docingest/config"
	"github.com/inkwell-ai/docingest/dispatch"
	"github.com/inkwell-ai/docingest/kb"
	"github.com/inkwell-ai/docingest/kb/bedrock"
	kbmock "github.com/inkwell-ai/docingest/kb/mock"
	"github.com/inkwell-ai/docingest/notify"
)

func main() {
	app := &cli.App{
		Name:   "docingestctl",
		Usage:  "Replay and inspect knowledge-base document ingestion",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "submit",
				Usage:  "Replay an S3 event notification file through the dispatcher",
				Action: submitCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "event",
						Aliases:  []string{"e"},
						Usage:    "Path to an S3 event notification JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "bucket",
						Usage:   "Target bucket; records from other buckets are skipped",
						EnvVars: []string{"MEDIA_BUCKET"},
					},
					&cli.StringFlag{
						Name:    "knowledge-base-id",
						Usage:   "Knowledge base identifier",
						EnvVars: []string{"KNOWLEDGE_BASE_ID"},
					},
					&cli.StringFlag{
						Name:    "data-source-id",
						Usage:   "Data source identifier",
						EnvVars: []string{"DATA_SOURCE_ID"},
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Print the requests that would be submitted without calling the service",
					},
					&cli.BoolFlag{
						Name:  "deterministic-ids",
						Usage: "Derive document identifiers from bucket and key instead of random ones",
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Query the indexing status of a submitted document",
				Action: statusCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "document-id",
						Aliases:  []string{"d"},
						Usage:    "Document identifier returned at submission",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "knowledge-base-id",
						Usage:   "Knowledge base identifier",
						EnvVars: []string{"KNOWLEDGE_BASE_ID"},
					},
					&cli.StringFlag{
						Name:    "data-source-id",
						Usage:   "Data source identifier",
						EnvVars: []string{"DATA_SOURCE_ID"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func submitCommand(c *cli.Context) error {
	ctx := context.Background()

	bucket := c.String("bucket")
	if bucket == "" {
		return fmt.Errorf("bucket is required (flag --bucket or MEDIA_BUCKET)")
	}

	data, err := os.ReadFile(c.String("event"))
	if err != nil {
		return fmt.Errorf("failed to read event file: %w", err)
	}

	var event events.S3Event
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to parse event file: %w", err)
	}

	var ingestor kb.Ingestor
	if c.Bool("dry-run") {
		ingestor = kbmock.NewMockIngestor()
	} else {
		ingestor, err = newBedrockIngestor(ctx, c)
		if err != nil {
			return err
		}
	}

	opts := []dispatch.Option{}
	if c.Bool("deterministic-ids") {
		opts = append(opts, dispatch.WithDeterministicIDs())
	}

	dispatcher, err := dispatch.NewDispatcher(bucket, ingestor, opts...)
	if err != nil {
		return err
	}

	records := notify.FromS3Event(event)
	fmt.Fprintf(os.Stderr, "Event file: %s\n", c.String("event"))
	fmt.Fprintf(os.Stderr, "Records: %d\n", len(records))
	fmt.Fprintln(os.Stderr)

	summary := dispatcher.Dispatch(ctx, records)
	fmt.Fprintf(os.Stderr, "Submitted: %d  Skipped: %d  Failed: %d\n",
		summary.Submitted, summary.Skipped, summary.Failed)

	if c.Bool("dry-run") {
		mock := ingestor.(*kbmock.MockIngestor)
		for _, req := range mock.Requests {
			fmt.Printf("%s  %s\n", req.DocumentID, req.SourceURI)
		}
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	ctx := context.Background()

	ingestor, err := newBedrockIngestor(ctx, c)
	if err != nil {
		return err
	}

	result, err := ingestor.DocumentStatus(ctx, c.String("document-id"))
	if err != nil {
		return fmt.Errorf("status query failed: %w", err)
	}

	fmt.Printf("Document: %s\n", result.DocumentID)
	fmt.Printf("Status: %s\n", result.Status)
	if result.StatusReason != "" {
		fmt.Printf("Reason: %s\n", result.StatusReason)
	}
	return nil
}

func newBedrockIngestor(ctx context.Context, c *cli.Context) (kb.Ingestor, error) {
	cfg := kb.Config{
		KnowledgeBaseID: c.String("knowledge-base-id"),
		DataSourceID:    c.String("data-source-id"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return bedrock.NewIngestor(bedrockagent.NewFromConfig(awsCfg), cfg)
}

func setupLogger(c *cli.Context) error {
	// Share the level vocabulary with the Lambda's configuration.
	cfg := &config.Config{LogLevel: c.String("log-level")}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
