package docfile_test

import (
	"testing"

	"docket/internal/docfile"
)

func TestParseConvention(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		first    string
		last     string
		date     string
		docType  string
	}{
		{
			name:     "simple first last",
			filename: "James-Abbott-2022-278TERM.pdf",
			first:    "James",
			last:     "Abbott",
			date:     "2022",
			docType:  "278TERM",
		},
		{
			name:     "middle initial",
			filename: "Jessica-D-Aber-2025-278TERM.pdf",
			first:    "Jessica D",
			last:     "Aber",
			date:     "2025",
			docType:  "278TERM",
		},
		{
			name:     "dotted date",
			filename: "Erhard-R-Chorle-06.09.2025-278T.pdf",
			first:    "Erhard R",
			last:     "Chorle",
			date:     "06.09.2025",
			docType:  "278T",
		},
		{
			name:     "path stripped to base",
			filename: "attachments/James-Abbott-2022-278TERM.pdf",
			first:    "James",
			last:     "Abbott",
			date:     "2022",
			docType:  "278TERM",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			att, ok := docfile.Parse(tc.filename)
			if !ok {
				t.Fatalf("Parse(%q) reported malformed", tc.filename)
			}
			if att.First != tc.first || att.Last != tc.last {
				t.Fatalf("name = (%q, %q), want (%q, %q)", att.First, att.Last, tc.first, tc.last)
			}
			if att.Date != tc.date {
				t.Fatalf("date = %q, want %q", att.Date, tc.date)
			}
			if att.DocType != tc.docType {
				t.Fatalf("doc type = %q, want %q", att.DocType, tc.docType)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"readme.pdf",
		"2022-278TERM.pdf",
		"James-Abbott.pdf",
		"NoHyphensAtAll",
	}
	for _, filename := range cases {
		att, ok := docfile.Parse(filename)
		if ok {
			t.Fatalf("Parse(%q) = %+v, expected malformed", filename, att)
		}
		if att.FileName == "" {
			t.Fatalf("Parse(%q) must preserve the original filename", filename)
		}
	}
}

func TestDisplayName(t *testing.T) {
	att, ok := docfile.Parse("Jessica-D-Aber-2025-278TERM.pdf")
	if !ok {
		t.Fatal("unexpected malformed")
	}
	if got := att.DisplayName(); got != "Jessica D Aber" {
		t.Fatalf("DisplayName = %q", got)
	}
}
