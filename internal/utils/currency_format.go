package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is the single currency shown on reports.
const CurrencyPrefix = "Rs. "

// AmountPrecision is the number of decimals used when amounts leave the core.
const AmountPrecision = 2

// FormatAmount rounds a raw float sum half-away-from-zero to two decimals.
// Example: 12.345 returns "12.35", 7 returns "7.00"
func FormatAmount(amount float64) string {
	return FormatWithPrecision(amount, AmountPrecision)
}

// FormatWithPrecision formats an amount with the given precision.
// NaN and infinities render as "NaN", "+Inf" and "-Inf".
func FormatWithPrecision(amount float64, precision int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatCurrency formats an amount with the currency prefix, e.g. "Rs. 12.50".
func FormatCurrency(amount float64) string {
	return CurrencyPrefix + FormatAmount(amount)
}

// FormatOptionalNumber renders an optional informational number with the fewest digits needed.
// A nil value renders as the empty string.
func FormatOptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
