package student

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input  string
		want   Key
		wantOK bool
	}{
		{"id", KeyID, true},
		{"NAME", KeyName, true},
		{"  Grade ", KeyGrade, true},
		{"age", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKey(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseKey(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim whitespace", "  Ada  ", "Ada"},
		{"collapse internal whitespace", "Ada    Lovelace", "Ada Lovelace"},
		{"tabs and newlines", "Ada\t\n Lovelace", "Ada Lovelace"},
		{"case preserved", "aDA", "aDA"},
		{"only whitespace", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountChars(t *testing.T) {
	if got := CountChars("Zoë"); got != 3 {
		t.Errorf("CountChars = %d, want 3", got)
	}
}

func TestRecordCopyIsIndependent(t *testing.T) {
	a := Record{ID: 1, Name: "Ada", Grade: 90}
	b := a
	b.Name = "Bea"
	b.Grade = 10

	if a.Name != "Ada" || a.Grade != 90 {
		t.Errorf("original mutated through copy: %+v", a)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []Record{{ID: 7, Name: "Ada", Grade: 91.456}})
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID         Name") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != tableRule {
		t.Errorf("rule = %q", lines[1])
	}
	if want := "7          Ada                  91.46     "; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestMarkdownTable(t *testing.T) {
	md := MarkdownTable([]Record{{ID: 1, Name: "A|B", Grade: 80}})

	if !strings.Contains(md, "| ID | Name | Grade |") {
		t.Errorf("missing header:\n%s", md)
	}
	if !strings.Contains(md, `| 1 | A&#124;B | 80.00 |`) {
		t.Errorf("missing escaped row:\n%s", md)
	}
}

func TestMarkdownTable_EscapesNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"*Ann*", `\*Ann\*`},
		{"__Bo__", `\_\_Bo\_\_`},
		{`a\|b`, `a&#92;&#124;b`},
		{"<b>x</b>", `\<b\>x\<\/b\>`},
		{"[link](u) #1 `c`", "\\[link\\]\\(u\\) \\#1 \\`c\\`"},
		{"Zoë Ng", "Zoë Ng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := MarkdownTable([]Record{{ID: 1, Name: tt.name, Grade: 1}})
			if !strings.Contains(md, "| 1 | "+tt.want+" | 1.00 |") {
				t.Errorf("name %q rendered as:\n%s\nwant cell %q", tt.name, md, tt.want)
			}
		})
	}
}
