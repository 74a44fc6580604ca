// Package money converts between decimal amounts and their pt-BR display
// form ("R$ 1.234,56"). Amounts are stored and computed as decimals
// everywhere; this codec exists only for the presentation boundary and for
// accepting user-typed values.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse extracts a non-negative amount from user-typed money text. Both
// the localized form ("R$ 1.234,56") and the plain decimal form the API
// itself emits ("1234.56") are accepted. A comma always marks the decimal
// separator and demotes every dot to grouping; without a comma, the last
// dot is the decimal point unless exactly three digits follow it, in which
// case all dots are grouping ("1.234" is one thousand two hundred
// thirty-four). Empty or non-numeric input yields zero rather than an
// error; legacy exports rely on that behavior.
func Parse(text string) decimal.Decimal {
	cleaned := strings.NewReplacer(
		"R", "",
		"$", "",
		"-", "",
		" ", "",
		" ", "",
	).Replace(text)

	if strings.ContainsRune(cleaned, ',') {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else if i := strings.LastIndexByte(cleaned, '.'); i >= 0 {
		intPart := strings.ReplaceAll(cleaned[:i], ".", "")
		fracPart := cleaned[i+1:]
		if len(fracPart) == 3 || len(fracPart) == 0 {
			cleaned = intPart + fracPart
		} else {
			cleaned = intPart + "." + fracPart
		}
	}

	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Format renders an amount with two fraction digits, dot grouping and a
// comma decimal separator, prefixed with "R$" or "- R$" when negative is
// set. Parse(Format(x, s)) == x holds for every non-negative two-decimal x.
func Format(amount decimal.Decimal, negative bool) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	prefix := "R$ "
	if negative {
		prefix = "- R$ "
	}
	return prefix + grouped.String() + "," + fracPart
}
