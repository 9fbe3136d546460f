package student

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const tableRule = "----------------------------------------"

// WriteTable prints records in the fixed-width console layout.
func WriteTable(w io.Writer, records []Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-20s %-10s\n", "ID", "Name", "Grade")
	b.WriteString(tableRule + "\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%-10d %-20s %-10.2f\n", r.ID, r.Name, r.Grade)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// MarkdownTable renders records as a GitHub-flavored Markdown table.
// Names are escaped so they render as literal text.
func MarkdownTable(records []Record) string {
	var b strings.Builder
	b.WriteString("| ID | Name | Grade |\n")
	b.WriteString("|---:|:-----|------:|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %d | %s | %.2f |\n", r.ID, escapeMarkdown(r.Name), r.Grade)
	}
	return b.String()
}

// escapeMarkdown backslash-escapes ASCII punctuation. Pipes and backslashes
// become character references so the table row splitter never sees them.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c == '|':
			b.WriteString("&#124;")
		case c == '\\':
			b.WriteString("&#92;")
		case c <= unicode.MaxASCII && (unicode.IsPunct(c) || unicode.IsSymbol(c)):
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
