package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places between the display unit and the
// smallest transferable unit (1 ZEC = 10^8 zatoshi).
const MinorUnitExponent = 8

// ToMinorUnits converts a display amount into gateway minor units, rounding down.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(MinorUnitExponent).Floor().IntPart()
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FitsMinorUnits reports whether amount converts to minor units without overflowing int64.
func FitsMinorUnits(amount decimal.Decimal) bool {
	return amount.Shift(MinorUnitExponent).Floor().LessThanOrEqual(maxMinorUnits)
}

func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent)
}

func PaymentMemo(b *Bounty) string {
	return fmt.Sprintf("Bounty: %s (ID: %s)", b.Title, b.ID)
}
