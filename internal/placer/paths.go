package placer

import (
	"fmt"
	"path/filepath"

	"docket/internal/directory"
	"docket/internal/namekey"
)

// UnmatchedFolder is the sibling bucket for documents that could not be
// assigned to a known person.
const UnmatchedFolder = "_Unmatched"

// PageFolder returns the directory name for a website page number,
// zero-padded to two digits to match the historical layout.
func PageFolder(page int) string {
	return fmt.Sprintf("Page_%02d", page)
}

// PersonPath returns the folder for a person under the documents root. The
// folder name comes from the display name so it matches the layout human
// reviewers know; persons without one fall back to the canonical key.
func PersonPath(root string, person directory.Person) string {
	folder := namekey.PersonFolder(person.RawName)
	if folder == "Unknown" {
		folder = namekey.FolderName(person.Key)
	}
	return filepath.Join(root, PageFolder(person.Page), folder)
}

// UnmatchedPath returns the fallback destination for an unassignable file.
func UnmatchedPath(root, filename string) string {
	return filepath.Join(root, UnmatchedFolder, namekey.SanitizeFileName(filename))
}
