// Package namekey canonicalizes person names into comparison keys.
//
// The same person shows up in three independent sources — website table rows,
// emailed attachment filenames, and the curated name→page mapping — with
// different casing, ordering ("Last, First" vs "First Last"), punctuation,
// and suffixes. Normalize collapses those variants into a single lowercase
// "first middle last" key so downstream lookup and fuzzy matching compare
// like with like.
//
// Keys also drive the on-disk layout: FolderName derives the deterministic,
// filesystem-safe person folder from a key, so placement never depends on
// which source a document arrived from.
package namekey
