// Package storage defines the read-only object-store abstraction used by the
// dispatcher's optional object probe. The production implementation lives in
// storage/s3; storage/mock provides a test double.
package storage
