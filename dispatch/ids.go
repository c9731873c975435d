package dispatch

import (
	"github.com/segmentio/ksuid"

	"github.com/inkwell-ai/docingest/core"
)

// IDSource produces document identifiers for ingestion requests.
// It receives the originating bucket and decoded key so implementations may
// derive stable identifiers from them; random sources ignore both.
type IDSource interface {
	DocumentID(bucket, key string) string
}

// randomIDSource generates a fresh KSUID per request. Two records referencing
// the same object always get distinct identifiers, so a redelivered
// notification ingests a new document version.
type randomIDSource struct{}

var _ IDSource = randomIDSource{}

func (randomIDSource) DocumentID(_, _ string) string {
	return ksuid.New().String()
}

// derivedIDSource hashes the source location into the identifier. Identical
// locations map to the same identifier, so redelivery updates the existing
// document instead of creating a duplicate.
type derivedIDSource struct{}

var _ IDSource = derivedIDSource{}

func (derivedIDSource) DocumentID(bucket, key string) string {
	return core.IDFromSource(bucket, key)
}
