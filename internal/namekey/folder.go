package namekey

import (
	"strings"
	"unicode/utf8"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// maxFolderLen caps person folder names so deeply suffixed names cannot
// overflow path limits.
const maxFolderLen = 100

// FolderName derives the stable, filesystem-safe folder name for a canonical
// key: each token title-cased and joined with underscores, e.g.
// "smith john" → "Smith_John". Empty keys map to "Unknown".
func FolderName(key Key) string {
	parts := key.Parts()
	if len(parts) == 0 {
		return "Unknown"
	}
	titled := make([]string, 0, len(parts))
	for _, part := range parts {
		titled = append(titled, titleToken(part))
	}
	name := truncateFolder(strings.Join(titled, "_"))
	return strings.Trim(name, "._")
}

// PersonFolder derives the on-disk folder name from a person's display name
// as it appears in the mapping data: separators collapse to underscores, so
// "Smith, John" becomes "Smith_John" and "John Smith" becomes "John_Smith".
// Empty or fully-unsafe names map to "Unknown".
func PersonFolder(raw string) string {
	cleaned := fileNameReplacer.Replace(strings.TrimSpace(raw))
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return "Unknown"
	}
	name := strings.Trim(truncateFolder(strings.Join(fields, "_")), "._")
	if name == "" {
		return "Unknown"
	}
	return name
}

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// truncateFolder caps a folder name at maxFolderLen bytes, backing up to a
// rune boundary so long non-ASCII names never truncate mid-rune.
func truncateFolder(name string) string {
	if len(name) <= maxFolderLen {
		return name
	}
	cut := maxFolderLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

func titleToken(tok string) string {
	if tok == "" {
		return tok
	}
	r, size := utf8.DecodeRuneInString(tok)
	return strings.ToUpper(string(r)) + tok[size:]
}
