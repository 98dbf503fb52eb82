package strcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerFirst lowers the first rune of s and leaves the rest untouched.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsLower(r) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToLower(r))
	b.WriteString(s[size:])

	return b.String()
}

// AccessorField converts a getter name into the field name it reads.
//
//	GetConfirmPassword -> confirmPassword
//	Message            -> message
//	Get                -> ""
//
// The "Get" prefix is only stripped when it is followed by an upper-case rune,
// so a field named "getaway" still maps to itself.
func AccessorField(accessor string) string {
	name := accessor
	if rest, ok := strings.CutPrefix(accessor, "Get"); ok {
		if rest == "" {
			return ""
		}
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			name = rest
		}
	}

	return LowerFirst(name)
}
