// Package services defines shared utilities consumed by the intake pipeline,
// the request runner, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, document names, and workflow stage
//     names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into per-item outcomes (skip, unmatched, fatal) so item-level problems
//     never abort a whole run.
//
// Use these helpers when wiring new workflow logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
