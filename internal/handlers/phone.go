package handlers

import (
	"strings"
	"unicode"
)

// normalizePhone strips punctuation and prefixes a US country code: ten
// digits get +1, eleven digits starting with 1 get +. Anything else is kept
// as entered.
func normalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case len(d) == 10:
		return "+1" + d
	case len(d) == 11 && strings.HasPrefix(d, "1"):
		return "+" + d
	default:
		return phone
	}
}
