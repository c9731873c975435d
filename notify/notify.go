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


// Package notify maps storage event notifications onto the domain model.
package notify

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/inkwell-ai/docingest/core"
)

// FromS3Event flattens an S3 event notification into notification records,
// preserving delivery order. Object keys are carried through as delivered
// (still URL-encoded); decoding happens during dispatch.
func FromS3Event(event events.S3Event) []core.NotificationRecord {
	records := make([]core.NotificationRecord, 0, len(event.Records))
	for _, r := range event.Records {
		records = append(records, core.NotificationRecord{
			Bucket:    r.S3.Bucket.Name,
			Key:       r.S3.Object.Key,
			EventName: r.EventName,
			EventTime: r.EventTime,
		})
	}
	return records
}
