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

import "errors"

// Domain validation errors
var (
	// ErrMalformedRecord indicates a NotificationRecord failed validation.
	ErrMalformedRecord = errors.New("malformed notification record")

	// ErrMissingBucket indicates the Bucket field is empty.
	ErrMissingBucket = errors.New("bucket name cannot be empty")

	// ErrMissingKey indicates the Key field is empty.
	ErrMissingKey = errors.New("object key cannot be empty")

	// ErrUndecodableKey indicates an object key with invalid URL encoding.
	ErrUndecodableKey = errors.New("object key has invalid URL encoding")
)
