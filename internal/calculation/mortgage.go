package calculation

import (
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculatePMT returns the level payment that amortizes pv over nper periods
// at the periodic rate. A zero rate spreads pv evenly.
func CalculatePMT(rate decimal.Decimal, nper int, pv decimal.Decimal) decimal.Decimal {
	if nper <= 0 {
		return decimal.Zero
	}
	if rate.IsZero() {
		return pv.Div(decimal.NewFromInt(int64(nper)))
	}
	pvif := pow(one.Add(rate), float64(nper))
	return rate.Mul(pv).Mul(pvif).Div(pvif.Sub(one))
}

// effectivePrincipal is the interest-bearing part of the loan
func effectivePrincipal(balance, offset decimal.Decimal) decimal.Decimal {
	return floorZero(balance.Sub(offset))
}

// MinimumRepayment is the scheduled repayment per RepaymentFreq period:
// the monthly amortization payment on the offset-reduced principal, divided
// by 4 for weekly or 2 for fortnightly repayments.
func MinimumRepayment(m domain.MortgageParams) decimal.Decimal {
	monthlyRate := percent(m.InterestRate).Div(twelve)
	monthly := CalculatePMT(monthlyRate, m.LoanTermYears*12, effectivePrincipal(m.Principal, m.OffsetBalance))
	return monthly.Div(decimal.NewFromInt(m.RepaymentFreq.MonthlyDivisor()))
}

// ActualRepayment is the user's override, or the mortgage-linked budget
// spread over the repayment periods in a year.
func ActualRepayment(state *domain.AppState) decimal.Decimal {
	m := state.Mortgage
	if m.UserRepayment != nil {
		return *m.UserRepayment
	}
	return LinkedRepaymentAnnual(state).Div(decimal.NewFromInt(m.RepaymentFreq.PeriodsPerYear()))
}

// FirstPeriodInterest is the interest charged in the first repayment period.
// A repayment below it makes the balance grow.
func FirstPeriodInterest(m domain.MortgageParams) decimal.Decimal {
	perPeriod := percent(m.InterestRate).Div(decimal.NewFromInt(m.RepaymentFreq.PeriodsPerYear()))
	return effectivePrincipal(m.Principal, m.OffsetBalance).Mul(perPeriod)
}

// toMonthly converts a per-period repayment into its monthly equivalent
func toMonthly(perPeriod decimal.Decimal, freq domain.RepaymentFrequency) decimal.Decimal {
	return perPeriod.Mul(decimal.NewFromInt(freq.PeriodsPerYear())).Div(twelve)
}

// amortizeMonth applies one month of interest on the offset-reduced balance
// and the repayment. Paid-off loans stay at zero.
func amortizeMonth(balance, offset, monthlyRate, repayment decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	interest := effectivePrincipal(balance, offset).Mul(monthlyRate)
	return roundBalance(floorZero(balance.Add(interest).Sub(repayment)))
}

// GenerateMortgageSimulation uses a default engine
func GenerateMortgageSimulation(state *domain.AppState) domain.MortgageSimulation {
	return NewCalculationEngine().GenerateMortgageSimulation(state)
}

// GenerateMortgageSimulation steps both repayment policies month by month for
// the loan term and samples them at each year boundary.
func (ce *CalculationEngine) GenerateMortgageSimulation(state *domain.AppState) domain.MortgageSimulation {
	m := state.Mortgage
	minRepayment := MinimumRepayment(m)
	actualRepayment := ActualRepayment(state)
	firstInterest := FirstPeriodInterest(m)

	belowInterest := actualRepayment.LessThan(firstInterest)
	if belowInterest {
		ce.Logger.Warnf("repayment %s is below first period interest %s; balance will grow",
			actualRepayment.StringFixed(2), firstInterest.StringFixed(2))
	}

	monthlyRate := percent(m.InterestRate).Div(twelve)
	monthlyMin := toMonthly(minRepayment, m.RepaymentFreq)
	monthlyActual := toMonthly(actualRepayment, m.RepaymentFreq)
	propertyFactor := monthlyGrowthFactor(m.GrowthRate)

	balStandard := m.Principal
	balActual := m.Principal
	property := m.PropertyValue

	months := m.LoanTermYears * 12
	data := make([]domain.MortgageYear, 0, m.LoanTermYears+1)

	for month := 0; month <= months; month++ {
		if month%12 == 0 {
			// equity and redraw are derived from the rounded balances
			bs, ba, p := cents(balStandard), cents(balActual), cents(property)
			data = append(data, domain.MortgageYear{
				Year:            month / 12,
				BalanceStandard: bs,
				BalanceActual:   ba,
				Property:        p,
				Equity:          p.Sub(ba),
				Redraw:          floorZero(bs.Sub(ba)),
			})
		}
		if month == months {
			break
		}
		balStandard = amortizeMonth(balStandard, m.OffsetBalance, monthlyRate, monthlyMin)
		balActual = amortizeMonth(balActual, m.OffsetBalance, monthlyRate, monthlyActual)
		property = roundBalance(property.Mul(propertyFactor))
	}

	sim := domain.MortgageSimulation{
		Data:                data,
		RepaymentFreq:       m.RepaymentFreq,
		MinRepayment:        minRepayment,
		ActualRepayment:     actualRepayment,
		PayoffActual:        m.LoanTermYears,
		PayoffStandard:      m.LoanTermYears,
		FirstPeriodInterest: firstInterest,
		BelowInterest:       belowInterest,
	}
	if y, ok := firstYear(data, func(d domain.MortgageYear) bool { return d.BalanceActual.IsZero() }); ok {
		sim.PayoffActual = y
	}
	if y, ok := firstYear(data, func(d domain.MortgageYear) bool { return d.BalanceStandard.IsZero() }); ok {
		sim.PayoffStandard = y
	}

	ce.Logger.Debugf("mortgage: min %s actual %s payoff actual %d standard %d",
		minRepayment.StringFixed(2), actualRepayment.StringFixed(2), sim.PayoffActual, sim.PayoffStandard)
	return sim
}

func firstYear(data []domain.MortgageYear, match func(domain.MortgageYear) bool) (int, bool) {
	for _, d := range data {
		if match(d) {
			return d.Year, true
		}
	}
	return 0, false
}

// CalculateRepaymentCapacity reports the budget-linked repayment per period,
// the most the household could repay if the whole surplus went to the loan,
// and whether the budget falls short of the minimum.
func CalculateRepaymentCapacity(state *domain.AppState, surplusAnnual decimal.Decimal) domain.RepaymentCapacity {
	m := state.Mortgage
	periods := decimal.NewFromInt(m.RepaymentFreq.PeriodsPerYear())
	budgetAnnual := LinkedRepaymentAnnual(state)
	budget := budgetAnnual.Div(periods)
	minRepayment := MinimumRepayment(m)

	return domain.RepaymentCapacity{
		BudgetRepayment:    budget,
		MaxCapacity:        surplusAnnual.Add(budgetAnnual).Div(periods),
		MinRepayment:       minRepayment,
		BudgetBelowMinimum: budget.LessThan(minRepayment),
	}
}
