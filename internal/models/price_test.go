// internal/models/price_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		amount float64
		valid  bool
	}{
		{"thousands and decimals", "1.079,98 TL", 1079.98, true},
		{"decimals only", "89,90 TL", 89.9, true},
		{"whole amount", "250 TL", 250, true},
		{"thousands only", "1.250 TL", 1250, true},
		{"lowercase currency", "45,50 tl", 45.5, true},
		{"surrounding whitespace", "  120,00 TL  ", 120, true},
		{"empty", "", 0, false},
		{"garbage", "fiyat yok", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := ParsePrice(tt.raw)
			assert.Equal(t, tt.amount, price.Amount)
			assert.Equal(t, tt.valid, price.IsValid())
		})
	}
}

func TestParsePriceKeepsRawText(t *testing.T) {
	price := ParsePrice("  1.079,98 TL ")
	assert.Equal(t, "1.079,98 TL", price.Raw)
}

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "1.079,98 TL", ParsePrice("1.079,98 TL").Display("tr"))
	assert.Equal(t, "Fiyat belirtilmemiş", ParsePrice("").Display("tr"))
	assert.Equal(t, "Price not specified", ParsePrice("").Display("en"))
}
