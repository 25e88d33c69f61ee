package utils

import "strconv"

// FormatWithCommas renders n with thousands separators for log and
// summary output, e.g. 1234567 -> "1,234,567".
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if s[0] == '-' {
		start = 1
	}
	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+(digits-1)/3)
	out = append(out, s[:start]...)
	for i := start; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
