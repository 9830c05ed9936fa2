// Package ledger persists which document types have already been requested
// for each person.
//
// The ledger is an optimization, not the system of record: the remote service
// plus the on-disk document tree decide what actually exists. Its job is to
// survive interrupted runs so resuming never re-submits a request that
// already went out. Every recording is committed to SQLite before the call
// returns; a corrupt or missing database degrades to a cold start with a
// warning, never a fatal error.
//
// Keys are canonicalized through namekey, so the same person recorded from
// different sources (popup names, table rows, imports) lands on one entry.
// Concurrent processes sharing one database are not supported; the CLI holds
// a file lock around mutating commands instead.
package ledger
