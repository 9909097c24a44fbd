// Package valueobject contains domain value objects for the Barber Manager system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes free-text currency input into a decimal amount.
// It accepts an optional "R$" prefix and both "," and "." as decimal
// separators ("R$ 1.234,56", "30,00", "30.00"). Input that cannot be parsed
// normalizes to zero; this is the documented lenient fallback for money text,
// so the caller never has to handle a parse error.
func ParseAmount(text string) decimal.Decimal {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "R$", ""))
	if cleaned == "" {
		return decimal.Zero
	}

	// Comma-decimal input uses "." as the thousands separator.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatBRL renders an amount as Brazilian currency text: fixed two decimals,
// comma decimal separator and dot thousands grouping ("R$ 1.234,56").
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return "R$ " + sign + grouped.String() + "," + decPart
}
