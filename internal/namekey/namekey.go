package namekey

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key is the canonical comparison form of a person name: lowercase,
// diacritic-folded, suffix-stripped, single-spaced, "first [middle] last"
// order.
type Key string

func (k Key) String() string { return string(k) }

// suffixTokens are honorifics and generational suffixes dropped during
// normalization. Only well-known tokens are stripped; anything else is kept
// so legitimate short surnames survive.
var suffixTokens = map[string]struct{}{
	"jr":        {},
	"sr":        {},
	"ii":        {},
	"iii":       {},
	"iv":        {},
	"esq":       {},
	"esquire":   {},
	"md":        {},
	"phd":       {},
	"jd":        {},
	"honorable": {},
	"hon":       {},
}

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a raw display name into its canonical Key. It is pure
// and total: input that does not look like a name at all comes back trimmed
// and lowercased rather than failing.
//
// A comma signals "Last, First [Middle]" ordering; the segments are swapped
// so every key reads "first [middle] last".
func Normalize(raw string) Key {
	folded, _, err := transform.String(diacriticFolder, raw)
	if err != nil {
		folded = raw
	}
	lowered := strings.ToLower(strings.TrimSpace(folded))
	if lowered == "" {
		return ""
	}

	var ordered []string
	if before, after, found := strings.Cut(lowered, ","); found {
		ordered = append(tokens(after), tokens(before)...)
	} else {
		ordered = tokens(lowered)
	}

	kept := ordered[:0]
	for _, tok := range ordered {
		if _, drop := suffixTokens[tok]; drop {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return Key(lowered)
	}
	return Key(strings.Join(kept, " "))
}

// tokens splits a name segment on whitespace and punctuation, dropping empty
// pieces. Periods, hyphens, and stray quotes all act as separators so
// "J.R. Smith-Jones" yields [j r smith jones].
func tokens(segment string) []string {
	return strings.FieldsFunc(segment, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Parts returns the individual tokens of a key, first-seen order.
func (k Key) Parts() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), " ")
}
