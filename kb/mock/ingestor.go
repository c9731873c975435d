package mock

import (
	"context"

	"github.com/inkwell-ai/docingest/core"
	"github.com/inkwell-ai/docingest/kb"
)

// MockIngestor is a test double for kb.Ingestor.
// It allows custom behavior injection via function fields.
type MockIngestor struct {
	// IngestDocumentFunc is called by IngestDocument if set.
	// If nil, uses default behavior: accept every document as STARTING.
	IngestDocumentFunc func(ctx context.Context, req core.IngestionRequest) (*kb.IngestionResult, error)

	// DocumentStatusFunc is called by DocumentStatus if set.
	// If nil, reports INDEXED for previously ingested documents and
	// NOT_FOUND otherwise.
	DocumentStatusFunc func(ctx context.Context, documentID string) (*kb.IngestionResult, error)

	// Requests records every request passed to IngestDocument, in order.
	Requests []core.IngestionRequest

	callCount int
}

// NewMockIngestor creates a mock ingestor with default accepting behavior.
// Note: Returns concrete type to allow test assertions on recorded requests.
func NewMockIngestor() *MockIngestor {
	return &MockIngestor{}
}

// IngestDocument records the request and accepts it as STARTING.
func (m *MockIngestor) IngestDocument(ctx context.Context, req core.IngestionRequest) (*kb.IngestionResult, error) {
	m.callCount++
	m.Requests = append(m.Requests, req)

	if m.IngestDocumentFunc != nil {
		return m.IngestDocumentFunc(ctx, req)
	}

	return &kb.IngestionResult{
		DocumentID: req.DocumentID,
		Status:     kb.StatusStarting,
	}, nil
}

// DocumentStatus reports INDEXED for documents seen by IngestDocument and
// NOT_FOUND for everything else.
func (m *MockIngestor) DocumentStatus(ctx context.Context, documentID string) (*kb.IngestionResult, error) {
	m.callCount++

	if m.DocumentStatusFunc != nil {
		return m.DocumentStatusFunc(ctx, documentID)
	}

	for _, req := range m.Requests {
		if req.DocumentID == documentID {
			return &kb.IngestionResult{DocumentID: documentID, Status: kb.StatusIndexed}, nil
		}
	}
	return &kb.IngestionResult{DocumentID: documentID, Status: kb.StatusNotFound}, nil
}

// CallCount returns the number of times any method was called.
func (m *MockIngestor) CallCount() int {
	return m.callCount
}

// Reset clears recorded requests, call counts, and injected behavior.
func (m *MockIngestor) Reset() {
	m.callCount = 0
	m.Requests = nil
	m.IngestDocumentFunc = nil
	m.DocumentStatusFunc = nil
}
