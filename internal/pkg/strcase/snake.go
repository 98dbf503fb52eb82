package strcase

import (
	"strings"
	"unicode"
)

// ConfigKey converts a record type name into the snake_case segment used
// for its rules in config files. Initialisms stay together and spaces,
// hyphens and dots become underscores.
//
//	SignUp       -> sign_up
//	HTTPRequest  -> http_request
//	user-ID form -> user_id_form
func ConfigKey(name string) string {
	runes := []rune(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(runes) + 4)

	pendingSep := false
	for i, r := range runes {
		if r == ' ' || r == '-' || r == '.' || r == '_' {
			pendingSep = b.Len() > 0
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				pendingSep = b.Len() > 0
			}
		}

		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
