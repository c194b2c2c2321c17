package calculation

import (
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

var weeksPerYear = decimal.NewFromInt(domain.WeeksPerYear)

// ToAnnual normalizes amount paid once every repeatCount units to a yearly figure.
// repeatCount must be at least 1. Unknown units count as annual.
func ToAnnual(amount decimal.Decimal, repeatCount int, unit domain.FrequencyUnit) decimal.Decimal {
	return amount.Mul(unit.Multiplier()).Div(decimal.NewFromInt(int64(repeatCount)))
}

// ToWeekly normalizes to a weekly figure
func ToWeekly(amount decimal.Decimal, repeatCount int, unit domain.FrequencyUnit) decimal.Decimal {
	return ToAnnual(amount, repeatCount, unit).Div(weeksPerYear)
}

// FromWeekly expresses a weekly amount in the target unit
func FromWeekly(weekly decimal.Decimal, unit domain.FrequencyUnit) decimal.Decimal {
	return weekly.Mul(weeksPerYear).Div(unit.Multiplier())
}

// FromAnnual expresses an annual amount in the target unit
func FromAnnual(annual decimal.Decimal, unit domain.FrequencyUnit) decimal.Decimal {
	return annual.Div(unit.Multiplier())
}

func expenseAnnual(e domain.ExpenseItem) decimal.Decimal {
	return ToAnnual(e.Amount, e.RepeatCount, e.Unit)
}

// TotalAnnualExpenses sums every expense line as an annual figure
func TotalAnnualExpenses(state *domain.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, e := range state.Expenses {
		total = total.Add(expenseAnnual(e))
	}
	return total
}

// LinkedRepaymentAnnual sums the expenses flagged as mortgage repayments
func LinkedRepaymentAnnual(state *domain.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, e := range state.Expenses {
		if e.IsMortgageLink {
			total = total.Add(expenseAnnual(e))
		}
	}
	return total
}

// unknownUnits lists every item whose unit is outside the supported set
func unknownUnits(state *domain.AppState) []string {
	var out []string
	for _, inc := range state.Incomes {
		if !inc.Unit.Valid() {
			out = append(out, "income "+inc.Name+" ("+string(inc.Unit)+")")
		}
	}
	for _, e := range state.Expenses {
		if !e.Unit.Valid() {
			out = append(out, "expense "+e.Name+" ("+string(e.Unit)+")")
		}
	}
	return out
}
