package utils

import "strings"

// FormatPrice renders a stored numeric price string for display:
// "."-grouped thousands with a " VND" suffix, e.g. "1500000" -> "1.500.000 VND".
// Non-digit characters in the input are ignored, so formatting the digit
// content of an already formatted price yields the same result.
func FormatPrice(price string) string {
	var digits strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := strings.TrimLeft(digits.String(), "0")
	if s == "" {
		s = "0"
	}

	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(r)
	}
	return out.String() + " VND"
}
