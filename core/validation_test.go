package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateNotificationRecord(t *testing.T) {
	eventTime := time.Now().Add(-1 * time.Minute)

	tests := []struct {
		name    string
		record  *NotificationRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &NotificationRecord{
				Bucket:    "media-bucket",
				Key:       "docs/report.pdf",
				EventName: "ObjectCreated:Put",
				EventTime: eventTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record without event details",
			record: &NotificationRecord{
				Bucket: "media-bucket",
				Key:    "report.pdf",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrMalformedRecord,
		},
		{
			name: "missing bucket",
			record: &NotificationRecord{
				Key: "docs/report.pdf",
			},
			wantErr: ErrMissingBucket,
		},
		{
			name: "missing key",
			record: &NotificationRecord{
				Bucket: "media-bucket",
			},
			wantErr: ErrMissingKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotificationRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateNotificationRecord() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateNotificationRecord() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNotificationRecord() error = %v, want %v", err, tt.wantErr)
			}

			// All validation failures are also malformed-record errors.
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("ValidateNotificationRecord() error = %v, want wrapped %v", err, ErrMalformedRecord)
			}
		})
	}
}
