// Package directory holds the per-run person→page mapping.
//
// The mapping is curated externally (a JSON object of "Last, First" display
// names to website page numbers) and loaded once at startup. Every key is
// normalized at load time; lookups and fuzzy matching work entirely on
// canonical keys. The directory is read-only for the remainder of the run.
package directory
