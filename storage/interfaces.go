package storage

import (
	"context"
	"time"
)

// ObjectInfo describes a stored object without its content.
type ObjectInfo struct {
	Bucket       string
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// ObjectStore provides read-only access to object metadata in the storage
// bucket. Implementations must be safe for concurrent use.
//
// The dispatcher forwards documents by reference and never reads object
// content; this interface exists for the optional pre-submit probe that
// confirms a notified object is actually present.
type ObjectStore interface {
	// HeadObject returns metadata for an object.
	// Returns ErrObjectNotFound if the object does not exist.
	HeadObject(ctx context.Context, bucket, key string) (*ObjectInfo, error)
}
