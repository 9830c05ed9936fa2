// Package docfile parses emailed attachment filenames into person names and
// document-type labels.
//
// Delivered PDFs follow the convention First[-Middle]-Last-Date-Type.pdf,
// for example "Jessica-D-Aber-2025-278TERM.pdf" or
// "Erhard-R-Chorle-06.09.2025-278T.pdf". Name tokens run until the first
// hyphen-separated token that starts with a digit; the token before that
// boundary is the surname and everything earlier the given name(s). The
// final token is the document-type label and any tokens between are the
// filing date. Filenames that do not fit the convention are reported as
// malformed so callers can route them to the unmatched bucket with the
// original name intact.
package docfile

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Attachment is the parsed identity of one delivered document.
type Attachment struct {
	FileName string
	First    string
	Last     string
	Date     string
	DocType  string
}

// DisplayName returns the person name in "First Last" order.
func (a Attachment) DisplayName() string {
	if a.First == "" {
		return a.Last
	}
	return a.First + " " + a.Last
}

// Parse splits filename per the attachment convention. ok is false when the
// filename cannot be parsed into at least a two-token name plus a trailing
// type label.
func Parse(filename string) (Attachment, bool) {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, "-")

	boundary := len(parts)
	for i, part := range parts {
		if startsWithDigit(part) {
			boundary = i
			break
		}
	}

	nameParts := parts[:boundary]
	trailing := parts[boundary:]
	if len(nameParts) < 2 || len(trailing) == 0 {
		return Attachment{FileName: base}, false
	}

	att := Attachment{
		FileName: base,
		First:    strings.Join(nameParts[:len(nameParts)-1], " "),
		Last:     nameParts[len(nameParts)-1],
		DocType:  trailing[len(trailing)-1],
	}
	if len(trailing) > 1 {
		att.Date = strings.Join(trailing[:len(trailing)-1], "-")
	}
	return att, true
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
