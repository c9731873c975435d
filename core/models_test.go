package core

import (
	"errors"
	"testing"
)

func TestSourceURI(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		key    string
		want   string
	}{
		{
			name:   "simple key",
			bucket: "media-bucket",
			key:    "report.pdf",
			want:   "s3://media-bucket/report.pdf",
		},
		{
			name:   "nested key",
			bucket: "media-bucket",
			key:    "docs/report.pdf",
			want:   "s3://media-bucket/docs/report.pdf",
		},
		{
			name:   "key with spaces",
			bucket: "media-bucket",
			key:    "quarterly report.pdf",
			want:   "s3://media-bucket/quarterly report.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SourceURI(tt.bucket, tt.key)
			if got != tt.want {
				t.Errorf("SourceURI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "plain key",
			raw:  "docs/report.pdf",
			want: "docs/report.pdf",
		},
		{
			name: "percent-encoded plus",
			raw:  "a%2Bb.pdf",
			want: "a+b.pdf",
		},
		{
			name: "plus decodes to space",
			raw:  "quarterly+report.pdf",
			want: "quarterly report.pdf",
		},
		{
			name: "encoded unicode",
			raw:  "r%C3%A9sum%C3%A9.pdf",
			want: "résumé.pdf",
		},
		{
			name:    "invalid percent escape",
			raw:     "bad%zzkey.pdf",
			wantErr: ErrUndecodableKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeObjectKey(tt.raw)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DecodeObjectKey() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("DecodeObjectKey() error = %v, want nil", err)
				return
			}
			if got != tt.want {
				t.Errorf("DecodeObjectKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewIngestionRequest(t *testing.T) {
	req := NewIngestionRequest("doc-1", "media-bucket", "docs/report.pdf")

	if req.DocumentID != "doc-1" {
		t.Errorf("DocumentID = %q, want %q", req.DocumentID, "doc-1")
	}
	if req.SourceURI != "s3://media-bucket/docs/report.pdf" {
		t.Errorf("SourceURI = %q, want %q", req.SourceURI, "s3://media-bucket/docs/report.pdf")
	}

	if len(req.Metadata) != 3 {
		t.Fatalf("Metadata has %d entries, want 3", len(req.Metadata))
	}

	got := make(map[string]string, len(req.Metadata))
	for _, entry := range req.Metadata {
		got[entry.Key] = entry.Value
	}

	want := map[string]string{
		MetadataKeyUploaderBucket: "media-bucket",
		MetadataKeyObjectKey:      "docs/report.pdf",
		MetadataKeySource:         SourceTag,
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("Metadata[%q] = %q, want %q", key, got[key], value)
		}
	}
}

func TestIDFromSource(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		key    string
	}{
		{
			name:   "simple object",
			bucket: "media-bucket",
			key:    "report.pdf",
		},
		{
			name:   "empty key",
			bucket: "media-bucket",
			key:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromSource(tt.bucket, tt.key)
			id2 := IDFromSource(tt.bucket, tt.key)

			if id1 != id2 {
				t.Errorf("IDFromSource() produced different IDs for same source: %s vs %s", id1, id2)
			}
			if id1 == "" {
				t.Errorf("IDFromSource() produced empty ID")
			}
		})
	}
}

func TestIDFromSource_Different(t *testing.T) {
	id1 := IDFromSource("media-bucket", "a.pdf")
	id2 := IDFromSource("media-bucket", "b.pdf")

	if id1 == id2 {
		t.Errorf("IDFromSource() produced same ID for different objects")
	}

	// Bucket is part of the identity, not just the key.
	id3 := IDFromSource("other-bucket", "a.pdf")
	if id1 == id3 {
		t.Errorf("IDFromSource() produced same ID for different buckets")
	}
}
