package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeROI returns the return on investment as a percentage:
// (earned - spent) / spent * 100. A non-positive spend yields 0 rather
// than an error or infinity.
func ComputeROI(spent, earned decimal.Decimal) float64 {
	if !spent.IsPositive() {
		return 0
	}
	return earned.Sub(spent).Div(spent).Mul(hundred).InexactFloat64()
}
