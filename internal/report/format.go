package report

import (
	"strconv"
	"strings"
)

// FormatNumber renders n with comma thousands separators.
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Percent is lines as a share of total, or 0 when total is 0.
func Percent(lines, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(lines) / float64(total) * 100
}
