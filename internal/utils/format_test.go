package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"small", 512, "512"},
		{"thousands", 1234, "1,234"},
		{"millions", 3168588, "3,168,588"},
		{"negative", -1084067, "-1,084,067"},
		{"rounds to integer", 1234567.8, "1,234,568"},
		{"negative rounding to zero keeps no sign", -0.2, "0"},
		{"nan is zero", math.NaN(), "0"},
		{"infinity is zero", math.Inf(1), "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatThousands(tc.in))
		})
	}
}

func TestFormatKUSD(t *testing.T) {
	assert.Equal(t, "$5,736,217 (K)", FormatKUSD(5736217))
	assert.Equal(t, "$-70,224 (K)", FormatKUSD(-70224))
	assert.Equal(t, "$0 (K)", FormatKUSD(0))
}
