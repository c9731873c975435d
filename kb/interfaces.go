package kb

import (
	"context"

	"github.com/inkwell-ai/docingest/core"
)

// Ingestor submits documents to a managed knowledge-base service for
// indexing. Implementations must be safe for concurrent use.
type Ingestor interface {
	// IngestDocument submits one document by reference for indexing.
	// The service performs chunking, embedding, and indexing opaquely;
	// the returned result carries the service's initial status for the
	// document. Returns an error if the submission itself fails.
	IngestDocument(ctx context.Context, req core.IngestionRequest) (*IngestionResult, error)

	// DocumentStatus retrieves the current indexing status for a
	// previously submitted document identifier.
	// Returns StatusNotFound if the service has no such document.
	DocumentStatus(ctx context.Context, documentID string) (*IngestionResult, error)
}
