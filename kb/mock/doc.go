// Package mock provides a test double implementation of kb.Ingestor.
//
// The mock lets tests run without the external knowledge-base service and
// enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default accepting behavior
//	ingestor := mock.NewMockIngestor()
//
//	// Custom behavior injection
//	ingestor.IngestDocumentFunc = func(ctx context.Context, req core.IngestionRequest) (*kb.IngestionResult, error) {
//	    return nil, errors.New("service unavailable")
//	}
//
//	// Assertions on recorded submissions
//	require.Len(t, ingestor.Requests, 2)
//
// # Default Behavior
//
// IngestDocument accepts every document with status STARTING and records the
// request. DocumentStatus reports INDEXED for any previously ingested
// document identifier and NOT_FOUND otherwise.
package mock
