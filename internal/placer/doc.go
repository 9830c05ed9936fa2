// Package placer computes destination paths for collected documents and
// performs non-clobbering writes into the organized tree.
//
// The layout is the contract shared with the auditor and with human
// reviewers: Page_NN/Person_Folder/file for matched documents and
// _Unmatched/file for everything that cannot be confidently assigned.
// Destinations derive from canonical name keys, never from searching the
// tree, so placement is deterministic and existence checks double as the
// duplicate index.
package placer
