package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"AZN uses the manat sign as a suffix", 9.5, "AZN", "9.50 ₼"},
		{"USD uses the dollar sign as a prefix", 9.5, "USD", "$9.50"},
		{"unknown codes render as dollars", 9.5, "EUR", "$9.50"},
		{"rounds to two decimals", 1.005, "USD", "$1.00"},
		{"zero amount", 0, "AZN", "0.00 ₼"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.code))
		})
	}
}
