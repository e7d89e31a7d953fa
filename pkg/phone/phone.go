// Package phone canonicalizes Iranian mobile numbers to the 11-digit
// "09…" form used as the login identity across the system.
package phone

import "strings"

// Normalize converts any accepted input format to the canonical form:
//
//	"9123456789"    -> "09123456789"
//	"0912345678"    -> "09123456789" (missing 9 after the leading 0)
//	"09123456789"   -> "09123456789"
//	"+989123456789" -> "09123456789"
//
// The output is not validated as a real mobile number; inputs that fit
// none of the fixups pass through with non-digits stripped.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Country code 98 first, so "+98912…" reduces to "912…".
	if strings.HasPrefix(cleaned, "98") {
		cleaned = cleaned[2:]
	}

	// 10 digits starting "0" but second digit != 9: the 9 was dropped.
	if len(cleaned) == 10 && cleaned[0] == '0' && cleaned[1] != '9' {
		cleaned = "09" + cleaned[1:]
	}

	// 10 digits starting "9": missing the leading 0.
	if len(cleaned) == 10 && cleaned[0] == '9' {
		cleaned = "0" + cleaned
	}

	// 9 digits not starting "0": missing the "09" prefix.
	if len(cleaned) == 9 && cleaned[0] != '0' {
		cleaned = "09" + cleaned
	}

	return cleaned
}
