package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// balancePlaces bounds the precision carried between simulation steps
const balancePlaces = 10

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// pow raises base to a real exponent. decimal.Pow only handles integer
// exponents, and compounding needs (1+g)^(1/12).
func pow(base decimal.Decimal, exp float64) decimal.Decimal {
	b, _ := base.Float64()
	return decimal.NewFromFloat(math.Pow(b, exp))
}

// percent converts 5.39 into 0.0539
func percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(hundred)
}

// monthlyGrowthFactor is (1 + ratePct/100)^(1/12)
func monthlyGrowthFactor(ratePct decimal.Decimal) decimal.Decimal {
	return pow(one.Add(percent(ratePct)), 1.0/12.0)
}

// floorZero clamps negative values to zero
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func roundBalance(d decimal.Decimal) decimal.Decimal {
	return d.Round(balancePlaces)
}

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
