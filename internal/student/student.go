package student

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameChars is the longest accepted student name, in runes.
const MaxNameChars = 49

// Record is one student's id/name/grade tuple.
// Records are plain values; copying a Record yields an independent copy.
type Record struct {
	// ID is unique across all live records in a roster
	ID int `json:"id"`

	// Name is free text; duplicates are allowed
	Name string `json:"name"`

	// Grade has no range constraint
	Grade float64 `json:"grade"`
}

// Key selects the field records are ordered by.
type Key string

const (
	KeyID    Key = "id"
	KeyName  Key = "name"
	KeyGrade Key = "grade"
)

// Keys lists every valid sort key.
var Keys = []Key{KeyID, KeyName, KeyGrade}

// ParseKey resolves a sort key name, case-insensitively.
func ParseKey(s string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KeyID, KeyName, KeyGrade:
		return k, true
	}
	return "", false
}

// whitespaceRegex matches one or more whitespace characters
var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName trims a name and collapses internal whitespace.
// Case is preserved since name ordering is case-sensitive.
func NormalizeName(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// CountChars returns the character count as runes (not bytes).
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
