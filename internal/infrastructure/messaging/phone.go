package messaging

import "strings"

// NormalizePhone strips everything but digits from a raw phone number and
// prefixes the default country code when it is absent. Local numbers (up to
// 11 digits, area code plus subscriber) get the prefix; anything longer is
// assumed to carry a country code already.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	digits := b.String()
	if digits == "" || countryCode == "" {
		return digits
	}
	if len(digits) <= 11 && !strings.HasPrefix(digits, countryCode) {
		return countryCode + digits
	}
	return digits
}
