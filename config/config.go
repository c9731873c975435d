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


// Package config loads and validates the dispatcher's environment
// configuration. The three identifiers the dispatcher cannot run without
// (target bucket, knowledge base, data source) are validated at startup;
// a missing one is fatal before any processing begins.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvMediaBucket     = "MEDIA_BUCKET"
	EnvKnowledgeBaseID = "KNOWLEDGE_BASE_ID"
	EnvDataSourceID    = "DATA_SOURCE_ID"
	EnvLogLevel        = "LOG_LEVEL"
	EnvProbeObjects    = "PROBE_OBJECTS"
	EnvServiceName     = "SERVICE_NAME"
)

// DefaultServiceName is used when SERVICE_NAME is not set.
const DefaultServiceName = "doc-processing"

// Config holds the dispatcher's runtime configuration.
type Config struct {
	// MediaBucket is the only bucket whose notifications are dispatched.
	// Required.
	MediaBucket string

	// KnowledgeBaseID identifies the target knowledge base. Required.
	KnowledgeBaseID string

	// DataSourceID identifies the custom data source documents are
	// registered under. Required.
	DataSourceID string

	// LogLevel is the minimum level for structured logs
	// (debug, info, warn, error). Default: info.
	LogLevel string

	// ProbeObjects enables the advisory object-metadata probe before each
	// submission. Default: false.
	ProbeObjects bool

	// ServiceName tags logs, traces, and metrics. Default: doc-processing.
	ServiceName string
}

// FromEnv reads the configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		MediaBucket:     os.Getenv(EnvMediaBucket),
		KnowledgeBaseID: os.Getenv(EnvKnowledgeBaseID),
		DataSourceID:    os.Getenv(EnvDataSourceID),
		LogLevel:        os.Getenv(EnvLogLevel),
		ServiceName:     os.Getenv(EnvServiceName),
	}

	if raw := os.Getenv(EnvProbeObjects); raw != "" {
		probe, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", EnvProbeObjects, raw)
		}
		cfg.ProbeObjects = probe
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	var missing []string
	if c.MediaBucket == "" {
		missing = append(missing, EnvMediaBucket)
	}
	if c.KnowledgeBaseID == "" {
		missing = append(missing, EnvKnowledgeBaseID)
	}
	if c.DataSourceID == "" {
		missing = append(missing, EnvDataSourceID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("invalid log level " + strconv.Quote(c.LogLevel) + ": must be one of debug, info, warn, error")
}
