// internal/models/price.go
package models

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

var currencySuffixRe = regexp.MustCompile(`(?i)\s*TL\s*$`)

// Price is an immutable value object for a Turkish Lira price. Amount is 0
// when the source string is blank or unparseable; Raw keeps the original
// display text either way.
type Price struct {
	Raw    string  `json:"raw"`
	Amount float64 `json:"amount"`
}

// ParsePrice parses the Turkish price format, e.g. "1.079,98 TL". Dots are
// thousands separators, the comma is the decimal separator. Never fails.
func ParsePrice(raw string) Price {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Price{}
	}

	cleaned := strings.TrimSpace(currencySuffixRe.ReplaceAllString(trimmed, ""))
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		amount = 0
	}

	return Price{Raw: trimmed, Amount: amount}
}

func (p Price) IsValid() bool {
	return p.Amount > 0
}

func (p Price) Display(lang string) string {
	if p.Raw == "" {
		return i18n.T(lang, i18n.KeyPriceNotSpecified)
	}
	return p.Raw
}
