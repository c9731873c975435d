// Package mock provides a test double implementation of storage.ObjectStore.
package mock

import (
	"context"
	"fmt"

	"github.com/inkwell-ai/docingest/storage"
)

// MockObjectStore is a test double for storage.ObjectStore.
// It serves objects registered via Put and allows custom behavior injection.
type MockObjectStore struct {
	// HeadObjectFunc is called by HeadObject if set.
	// If nil, looks up objects registered with Put.
	HeadObjectFunc func(ctx context.Context, bucket, key string) (*storage.ObjectInfo, error)

	objects   map[string]*storage.ObjectInfo
	callCount int
}

// NewMockObjectStore creates an empty mock object store.
// Note: Returns concrete type to allow registering objects and assertions.
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{objects: make(map[string]*storage.ObjectInfo)}
}

// Put registers an object so subsequent HeadObject calls find it.
func (m *MockObjectStore) Put(info *storage.ObjectInfo) {
	m.objects[objectKey(info.Bucket, info.Key)] = info
}

// HeadObject returns metadata for a registered object, or
// storage.ErrObjectNotFound when nothing is registered under the location.
func (m *MockObjectStore) HeadObject(ctx context.Context, bucket, key string) (*storage.ObjectInfo, error) {
	m.callCount++

	if m.HeadObjectFunc != nil {
		return m.HeadObjectFunc(ctx, bucket, key)
	}

	if info, ok := m.objects[objectKey(bucket, key)]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("%w: s3://%s/%s", storage.ErrObjectNotFound, bucket, key)
}

// CallCount returns the number of HeadObject calls.
func (m *MockObjectStore) CallCount() int {
	return m.callCount
}

// Reset clears registered objects, call counts, and injected behavior.
func (m *MockObjectStore) Reset() {
	m.objects = make(map[string]*storage.ObjectInfo)
	m.callCount = 0
	m.HeadObjectFunc = nil
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}
