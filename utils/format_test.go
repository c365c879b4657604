package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1500000", "1.500.000 VND"},
		{"500", "500 VND"},
		{"1000", "1.000 VND"},
		{"999999999", "999.999.999 VND"},
		{"0", "0 VND"},
		{"", "0 VND"},
		{"007000", "7.000 VND"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.in), "input %q", tc.in)
	}
}

func TestFormatPriceSingleSuffix(t *testing.T) {
	out := FormatPrice("2500000")
	assert.Equal(t, "2.500.000 VND", out)

	// Formatting the formatted output again must not stack suffixes or
	// separators: non-digits are ignored on the way in.
	assert.Equal(t, out, FormatPrice(out))
}
