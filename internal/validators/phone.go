package validators

import (
	"strings"
	"unicode"
)

// NormalizePhone strips spaces, dashes, dots and parentheses and accepts
// 7 to 15 digits with an optional leading '+'.
func NormalizePhone(phone string) (string, bool) {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", false
		}
	}

	out := b.String()
	digits := len(strings.TrimPrefix(out, "+"))
	if digits < 7 || digits > 15 {
		return "", false
	}
	return out, true
}
