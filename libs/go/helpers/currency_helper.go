package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are charged in whole units by the card processor
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true, "KRW": true,
	"MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true,
	"XOF": true, "XPF": true,
}

// ToMinorUnits converts an amount to the smallest currency unit, e.g. paisa for PKR
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits
func FromMinorUnits(amount int64, currency string) decimal.Decimal {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return decimal.NewFromInt(amount)
	}
	return decimal.New(amount, -2)
}

// FormatMoney renders an amount for customers, e.g. "PKR 1,349" or "PKR 1,349.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	places := int32(0)
	if !amount.Equal(amount.Truncate(0)) {
		places = 2
	}
	fixed := amount.Abs().StringFixed(places)

	whole, frac, _ := strings.Cut(fixed, ".")
	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return strings.ToUpper(currency) + " " + sign + sb.String()
}
