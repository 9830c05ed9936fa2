// Package main hosts the docket CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the document workflow: batch intake
// over a drop directory, ledger inspection and import, reconciliation audits,
// and configuration scaffolding. It centralizes configuration resolution,
// structured logging setup, and single-instance locking so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
