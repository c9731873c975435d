package kb

import "errors"

var (
	// ErrNoResult is returned when the service accepts a submission but
	// reports no per-document details in its response.
	ErrNoResult = errors.New("ingestion response contained no document details")
)
