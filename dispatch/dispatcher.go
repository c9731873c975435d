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


package dispatch

import (
	"context"
	"log/slog"

	"github.com/inkwell-ai/docingest/core"
	"github.com/inkwell-ai/docingest/kb"
	"github.com/inkwell-ai/docingest/storage"
)

// Dispatcher translates object-creation notifications into knowledge-base
// ingestion requests. Records are processed sequentially in delivery order;
// a failure on one record never blocks the rest of the batch.
type Dispatcher struct {
	targetBucket string
	ingestor     kb.Ingestor
	ids          IDSource
	store        storage.ObjectStore // nil unless WithObjectProbe is set
	logger       *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// WithIDSource sets a custom document identifier source.
func WithIDSource(ids IDSource) Option {
	return func(d *Dispatcher) error {
		if ids == nil {
			return ErrIDSourceRequired
		}
		d.ids = ids
		return nil
	}
}

// WithDeterministicIDs derives document identifiers from the source location
// instead of generating a random one per record. With deterministic
// identifiers a redelivered notification updates the already-ingested
// document rather than creating a duplicate.
func WithDeterministicIDs() Option {
	return func(d *Dispatcher) error {
		d.ids = derivedIDSource{}
		return nil
	}
}

// WithObjectProbe enables a metadata lookup against the object store before
// each submission. The probe is advisory: its result is logged, and a probe
// failure does not stop the record from being submitted.
func WithObjectProbe(store storage.ObjectStore) Option {
	return func(d *Dispatcher) error {
		if store == nil {
			return ErrObjectStoreRequired
		}
		d.store = store
		return nil
	}
}

// NewDispatcher creates a dispatcher that forwards objects created in
// targetBucket to the given ingestor. Notifications from any other bucket
// are skipped.
func NewDispatcher(targetBucket string, ingestor kb.Ingestor, opts ...Option) (*Dispatcher, error) {
	if targetBucket == "" {
		return nil, ErrTargetBucketRequired
	}
	if ingestor == nil {
		return nil, ErrIngestorRequired
	}

	d := &Dispatcher{
		targetBucket: targetBucket,
		ingestor:     ingestor,
		ids:          randomIDSource{},
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	d.logger = d.logger.With("component", "dispatcher")
	return d, nil
}

// Summary aggregates per-record outcomes for one batch.
type Summary struct {
	// Total is the number of records in the batch.
	Total int
	// Submitted counts records whose ingestion request was accepted.
	Submitted int
	// Skipped counts records filtered out (wrong bucket or malformed).
	Skipped int
	// Failed counts records whose submission to the external service failed.
	Failed int
}

// Dispatch processes one notification batch. For each record it validates
// and decodes the object key, filters on the target bucket, builds an
// ingestion request with a fresh document identifier, and submits it.
//
// Per-record outcomes are isolated: skips and submission failures are logged
// and counted, and processing continues with the next record. Redelivery of
// failed records is the event infrastructure's concern, not handled here.
func (d *Dispatcher) Dispatch(ctx context.Context, records []core.NotificationRecord) *Summary {
	summary := &Summary{Total: len(records)}

	for _, record := range records {
		if err := core.ValidateNotificationRecord(&record); err != nil {
			d.logger.Error("skipping malformed record",
				"bucket", record.Bucket, "key", record.Key, "err", err)
			summary.Skipped++
			continue
		}

		key, err := core.DecodeObjectKey(record.Key)
		if err != nil {
			d.logger.Error("skipping record with undecodable key",
				"bucket", record.Bucket, "key", record.Key, "err", err)
			summary.Skipped++
			continue
		}

		if record.Bucket != d.targetBucket {
			d.logger.Warn("skipping record from unexpected bucket",
				"bucket", record.Bucket, "key", key, "target", d.targetBucket)
			summary.Skipped++
			continue
		}

		if d.store != nil {
			d.probe(ctx, record.Bucket, key)
		}

		documentID := d.ids.DocumentID(record.Bucket, key)
		request := core.NewIngestionRequest(documentID, record.Bucket, key)

		result, err := d.ingestor.IngestDocument(ctx, request)
		if err != nil {
			d.logger.Error("ingestion submission failed",
				"documentId", documentID, "uri", request.SourceURI, "err", err)
			summary.Failed++
			continue
		}

		d.logger.Info("document submitted for ingestion",
			"documentId", result.DocumentID,
			"uri", request.SourceURI,
			"status", result.Status)
		summary.Submitted++
	}

	return summary
}

// probe logs metadata for the notified object. Failures are logged only.
func (d *Dispatcher) probe(ctx context.Context, bucket, key string) {
	info, err := d.store.HeadObject(ctx, bucket, key)
	if err != nil {
		d.logger.Warn("object probe failed",
			"bucket", bucket, "key", key, "err", err)
		return
	}
	d.logger.Debug("object probe",
		"bucket", bucket, "key", key,
		"size", info.Size, "contentType", info.ContentType, "etag", info.ETag)
}
