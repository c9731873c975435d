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

import "fmt"

// ValidateNotificationRecord validates a NotificationRecord according to
// domain rules.
//
// Validation rules:
//   - Bucket must not be empty
//   - Key must not be empty
//
// NOT validated:
//   - Key encoding (checked separately by DecodeObjectKey during dispatch)
//   - EventName and EventTime (informational only)
func ValidateNotificationRecord(record *NotificationRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrMalformedRecord)
	}

	if record.Bucket == "" {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingBucket)
	}

	if record.Key == "" {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingKey)
	}

	return nil
}
