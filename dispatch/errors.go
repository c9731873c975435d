package dispatch

import "errors"

var (
	// ErrTargetBucketRequired is returned when a target bucket is not provided.
	ErrTargetBucketRequired = errors.New("target bucket required")

	// ErrIngestorRequired is returned when an ingestor is not provided.
	ErrIngestorRequired = errors.New("ingestor required")

	// ErrIDSourceRequired is returned when a nil identifier source is provided.
	ErrIDSourceRequired = errors.New("identifier source required")

	// ErrObjectStoreRequired is returned when a nil object store is provided
	// to WithObjectProbe.
	ErrObjectStoreRequired = errors.New("object store required")
)
