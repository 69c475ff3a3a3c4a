package validators

import "strings"

// NormalizePhone strips everything but digits, so "070-123 45 67" and
// "0701234567" compare equal.
func NormalizePhone(p string) string {
	var b strings.Builder
	for _, r := range p {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func PhoneEqual(a, b string) bool {
	return NormalizePhone(a) == NormalizePhone(b)
}
