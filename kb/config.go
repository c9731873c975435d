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


package kb

import "errors"

// Config identifies the knowledge base and data source that submitted
// documents are attached to. Both identifiers are assigned by the external
// service and are required.
type Config struct {
	// KnowledgeBaseID is the identifier of the target knowledge base.
	KnowledgeBaseID string

	// DataSourceID is the identifier of the custom data source within the
	// knowledge base that documents are registered under.
	DataSourceID string
}

// Validate checks that the configuration is complete. Missing identifiers are
// a fatal configuration error; no submission can proceed without them.
func (c *Config) Validate() error {
	if c.KnowledgeBaseID == "" {
		return errors.New("kb config: KnowledgeBaseID is required")
	}
	if c.DataSourceID == "" {
		return errors.New("kb config: DataSourceID is required")
	}
	return nil
}
