package domain

import (
	"strings"
	"unicode"
)

// NormalizePhone reduces a phone number to the 10-digit national format:
//   - drops every non-digit character
//   - drops a leading "91" country code when 12 digits remain
//   - drops a leading trunk "0" when 11 digits remain
//
// Returns the digits and false when the result is not exactly 10 digits.
func NormalizePhone(phone string) (string, bool) {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		digits = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	if len(digits) != 10 {
		return digits, false
	}
	return digits, true
}

// MaskRecipient hides most of an address for logs.
func MaskRecipient(addr string) string {
	if at := strings.IndexByte(addr, '@'); at > 0 {
		if at <= 2 {
			return addr[:1] + "***" + addr[at:]
		}
		return addr[:2] + "***" + addr[at:]
	}
	if len(addr) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(addr)-4) + addr[len(addr)-4:]
}
