// Package core defines the domain model shared across the ingestion
// dispatcher: notification records as delivered by storage events, the
// ingestion requests built from them, and the validation and identifier
// rules that govern the mapping between the two.
package core
