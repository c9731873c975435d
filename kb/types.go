package kb

// Status is the indexing state reported by the knowledge-base service for a
// submitted document. The set is defined by the external service; values not
// listed here are passed through verbatim.
type Status string

const (
	// StatusStarting indicates the service has accepted the document and is
	// beginning ingestion.
	StatusStarting Status = "STARTING"
	// StatusPending indicates the document is queued for ingestion.
	StatusPending Status = "PENDING"
	// StatusInProgress indicates ingestion is underway.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusIndexed indicates the document was fully indexed.
	StatusIndexed Status = "INDEXED"
	// StatusPartiallyIndexed indicates the document was indexed but its
	// metadata was not.
	StatusPartiallyIndexed Status = "PARTIALLY_INDEXED"
	// StatusFailed indicates ingestion failed.
	StatusFailed Status = "FAILED"
	// StatusIgnored indicates the service skipped the document.
	StatusIgnored Status = "IGNORED"
	// StatusNotFound indicates the service has no record of the document.
	StatusNotFound Status = "NOT_FOUND"
)

// Terminal reports whether the status is final. Non-terminal documents may be
// polled again for an updated status.
func (s Status) Terminal() bool {
	switch s {
	case StatusIndexed, StatusPartiallyIndexed, StatusFailed, StatusIgnored, StatusNotFound:
		return true
	}
	return false
}

// IngestionResult is the service's response to a document submission or
// status query. Read-only; logged for observability, never stored.
type IngestionResult struct {
	// DocumentID is the identifier the document was submitted under.
	DocumentID string

	// Status is the indexing state reported by the service.
	Status Status

	// StatusReason carries the service's explanation for a failed or
	// ignored document, when provided.
	StatusReason string
}
