package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatThousands renders a value with comma thousands separators and no
// decimals, e.g. 1234567.8 -> "1,234,568". Negative values keep their
// sign: -1234 -> "-1,234".
func FormatThousands(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	s := fmt.Sprintf("%.0f", math.Abs(v))
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if v < 0 && s != "0" {
		return "-" + b.String()
	}
	return b.String()
}

// FormatKUSD renders a KPI metric value, which is denominated in
// thousands of US dollars: "$1,234 (K)".
func FormatKUSD(v float64) string {
	return fmt.Sprintf("$%s (K)", FormatThousands(v))
}
