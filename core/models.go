// Copyright 2026 Inkwell AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"encoding/hex"
	"net/url"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Metadata attribute keys attached to every ingestion request.
const (
	MetadataKeyUploaderBucket = "uploaderBucket"
	MetadataKeyObjectKey      = "objectKey"
	MetadataKeySource         = "source"

	// SourceTag is the fixed provenance value recorded on every document.
	SourceTag = "s3-media-upload"
)

// NotificationRecord describes one object-creation event as delivered by the
// storage notification. Key holds the key exactly as delivered (URL-encoded);
// it is decoded during dispatch.
type NotificationRecord struct {
	Bucket    string
	Key       string
	EventName string
	EventTime time.Time
}

// MetadataEntry is a single key/string-value attribute on an ingestion request.
type MetadataEntry struct {
	Key   string
	Value string
}

// IngestionRequest is the payload submitted to the knowledge-base service to
// index one document by reference. Constructed per record, never reused.
type IngestionRequest struct {
	DocumentID string
	SourceURI  string
	Metadata   []MetadataEntry
}

// NewIngestionRequest assembles an ingestion request for an object. The key
// must already be decoded. Metadata always carries exactly three entries:
// the originating bucket, the object key, and the provenance tag.
func NewIngestionRequest(documentID, bucket, key string) IngestionRequest {
	return IngestionRequest{
		DocumentID: documentID,
		SourceURI:  SourceURI(bucket, key),
		Metadata: []MetadataEntry{
			{Key: MetadataKeyUploaderBucket, Value: bucket},
			{Key: MetadataKeyObjectKey, Value: key},
			{Key: MetadataKeySource, Value: SourceTag},
		},
	}
}

// SourceURI builds the source locator for an object.
func SourceURI(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}

// DecodeObjectKey decodes the URL-form encoding applied to object keys in
// storage notifications: percent escapes are resolved and "+" becomes a space.
// The decoded key is opaque text; no further interpretation is applied.
func DecodeObjectKey(raw string) (string, error) {
	key, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ErrUndecodableKey
	}
	return key, nil
}

// IDFromSource derives a deterministic document identifier from an object's
// bucket and decoded key using BLAKE2b hashing. Identical locations always
// produce identical identifiers, so a redelivered notification addresses the
// same document instead of creating a duplicate.
func IDFromSource(bucket, key string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(SourceURI(bucket, key)))
	return hex.EncodeToString(h.Sum(nil))
}
