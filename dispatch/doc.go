// Package dispatch implements the ingestion dispatcher: the mapping from
// object-creation notifications to knowledge-base ingestion requests.
//
// The Dispatcher processes each batch sequentially, in delivery order:
//   - Records missing a bucket or key, or carrying an undecodable key, are
//     skipped with a logged error
//   - Records from a bucket other than the configured target are skipped
//     with a logged warning
//   - Every remaining record produces exactly one ingestion request with a
//     fresh document identifier and three metadata attributes (originating
//     bucket, object key, provenance tag)
//
// Submission failures are logged and counted but never abort the batch;
// redelivery of failed records is left to the event infrastructure.
package dispatch
