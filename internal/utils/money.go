package utils

import (
	"strconv"
	"strings"
)

// FormatMoney formats an amount with thousands separators and two decimal
// places, e.g. 950000.0 -> "950,000.00".
func FormatMoney(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	return sign + sb.String() + "." + fracPart
}
