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


// Package kb provides the abstraction over the managed knowledge-base
// ingestion service.
//
// The service indexes documents by reference: a submission names an object's
// location in the storage bucket plus a handful of metadata attributes, and
// the service performs chunking, embedding, and indexing opaquely. This
// package defines the Ingestor interface the dispatcher depends on, the
// status vocabulary the service reports, and the configuration identifying
// the target knowledge base.
//
// # Implementation Packages
//
//   - kb/bedrock: production implementation on the Amazon Bedrock Agent API
//   - kb/mock: test doubles for unit testing without the external service
//
// Public constructors return the Ingestor interface rather than concrete
// types so callers stay decoupled from the Bedrock-specific implementation;
// mock constructors return concrete types to allow behavior injection and
// call assertions in tests.
package kb
