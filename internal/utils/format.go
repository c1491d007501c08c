package utils

import (
	"github.com/shopspring/decimal"
)

const currencySign = "₹"

// FormatMoney is the only place amounts get rounded, to two places.
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + currencySign + amount.Neg().StringFixed(2)
	}
	return currencySign + amount.StringFixed(2)
}

func Contains[T comparable](items []T, item T) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
