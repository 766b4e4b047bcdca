package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ColorSet is a closed, ordered allow-list of lowercase colour names.
type ColorSet struct {
	label   string
	members []string
}

// EyeColors is the allow-list for eye colour.
var EyeColors = ColorSet{
	label:   "eye",
	members: []string{"blue", "brown", "green", "hazel", "gray", "amber"},
}

// HairColors is the allow-list for hair colour.
var HairColors = ColorSet{
	label:   "hair",
	members: []string{"black", "brown", "blonde", "red", "gray", "white"},
}

// Label returns the attribute the set applies to ("eye" or "hair").
func (c ColorSet) Label() string {
	return c.label
}

// Members returns a copy of the allowed values in display order.
func (c ColorSet) Members() []string {
	out := make([]string, len(c.members))
	copy(out, c.members)
	return out
}

// Len returns the number of allowed values.
func (c ColorSet) Len() int {
	return len(c.members)
}

// Contains reports whether value is a member. Value must already be normalised.
func (c ColorSet) Contains(value string) bool {
	for _, m := range c.members {
		if m == value {
			return true
		}
	}
	return false
}

// Parse normalises raw and reports whether the result is a member.
func (c ColorSet) Parse(raw string) (string, bool) {
	value := NormalizeColor(raw)
	return value, c.Contains(value)
}

// String joins the members for display in diagnostics.
func (c ColorSet) String() string {
	return strings.Join(c.members, ", ")
}

// NormalizeColor trims surrounding whitespace and lower-cases the value.
func NormalizeColor(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
