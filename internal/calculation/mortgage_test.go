package calculation

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loanState(principal string, rate string, freq domain.RepaymentFrequency) *domain.AppState {
	return &domain.AppState{
		UserSettings: domain.UserSettings{IsResident: true},
		Mortgage: domain.MortgageParams{
			Principal:     d(principal),
			OffsetBalance: decimal.Zero,
			InterestRate:  d(rate),
			LoanTermYears: 30,
			RepaymentFreq: freq,
			PropertyValue: d("500000"),
			GrowthRate:    decimal.Zero,
		},
	}
}

func TestCalculatePMT(t *testing.T) {
	assertDecimal(t, "1000", CalculatePMT(decimal.Zero, 360, d("360000")), "zero rate")
	assertDecimal(t, "2147.29", CalculatePMT(d("0.05").Div(d("12")), 360, d("400000")).Round(2), "5% 30y 400k")
	assertDecimal(t, "0", CalculatePMT(d("0.01"), 0, d("1000")), "no periods")
	assertDecimal(t, "0", CalculatePMT(d("0.01"), 12, decimal.Zero), "nothing borrowed")
}

func TestMinimumRepayment_Frequency(t *testing.T) {
	monthly := MinimumRepayment(loanState("400000", "5", domain.RepaymentMonthly).Mortgage)
	fortnightly := MinimumRepayment(loanState("400000", "5", domain.RepaymentFortnightly).Mortgage)
	weekly := MinimumRepayment(loanState("400000", "5", domain.RepaymentWeekly).Mortgage)

	assertDecimal(t, "2147.29", monthly.Round(2), "monthly")
	assertDecimal(t, monthly.Div(d("2")).String(), fortnightly, "fortnightly is half")
	assertDecimal(t, monthly.Div(d("4")).String(), weekly, "weekly is a quarter")
}

func TestMinimumRepayment_UsesOffset(t *testing.T) {
	state := loanState("400000", "5", domain.RepaymentMonthly)
	state.Mortgage.OffsetBalance = d("100000")
	want := CalculatePMT(d("0.05").Div(d("12")), 360, d("300000"))

	assertDecimal(t, want.String(), MinimumRepayment(state.Mortgage), "offset reduces principal")

	state.Mortgage.OffsetBalance = d("500000")
	assertDecimal(t, "0", MinimumRepayment(state.Mortgage), "offset above principal")
}

func TestActualRepayment(t *testing.T) {
	state := loanState("400000", "5", domain.RepaymentFortnightly)
	state.Expenses = []domain.ExpenseItem{
		{Name: "Mortgage", Amount: d("1200"), RepeatCount: 1, Unit: domain.FrequencyFortnight, IsMortgageLink: true},
		{Name: "Groceries", Amount: d("300"), RepeatCount: 1, Unit: domain.FrequencyWeek},
	}
	assertDecimal(t, "1200", ActualRepayment(state), "from linked budget")

	state.Mortgage.UserRepayment = decimalPtr(d("1500"))
	assertDecimal(t, "1500", ActualRepayment(state), "user override")

	state.Mortgage.UserRepayment = nil
	state.Expenses = nil
	assertDecimal(t, "0", ActualRepayment(state), "nothing linked")
}

func TestGenerateMortgageSimulation_BelowInterest(t *testing.T) {
	state := loanState("400000", "5", domain.RepaymentMonthly)
	logger := &TestLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	sim := engine.GenerateMortgageSimulation(state)

	assertDecimal(t, "0", sim.ActualRepayment, "actual falls back to zero")
	assertDecimal(t, "2147.29", sim.MinRepayment.Round(2), "min")
	assertDecimal(t, "1666.67", sim.FirstPeriodInterest.Round(2), "first period interest")
	assert.True(t, sim.BelowInterest)
	assert.NotEmpty(t, logger.Warn)

	require.Len(t, sim.Data, 31)
	assertDecimal(t, "400000", sim.Data[0].BalanceActual, "start")
	for i := 1; i < len(sim.Data); i++ {
		assert.True(t, sim.Data[i].BalanceActual.GreaterThan(sim.Data[i-1].BalanceActual), "year %d balance must grow", i)
	}
	assert.Equal(t, 30, sim.PayoffActual)
	assert.Equal(t, 30, sim.PayoffStandard)
	assertNear(t, 0, sim.Data[30].BalanceStandard, 0.01, "minimum repayment amortizes the loan")
}

func TestGenerateMortgageSimulation_PayoffOrdering(t *testing.T) {
	for _, repayment := range []string{"2200", "2500", "3000", "5000", "10000"} {
		t.Run(repayment, func(t *testing.T) {
			state := loanState("400000", "5", domain.RepaymentMonthly)
			state.Mortgage.UserRepayment = decimalPtr(d(repayment))

			sim := GenerateMortgageSimulation(state)

			assert.True(t, sim.ActualRepayment.GreaterThan(sim.MinRepayment))
			assert.LessOrEqual(t, sim.PayoffActual, sim.PayoffStandard)
			assert.False(t, sim.BelowInterest)
			for _, row := range sim.Data {
				assert.False(t, row.BalanceActual.IsNegative())
				assert.True(t, row.Redraw.Equal(floorZero(row.BalanceStandard.Sub(row.BalanceActual))))
			}
		})
	}

	state := loanState("400000", "5", domain.RepaymentMonthly)
	state.Mortgage.UserRepayment = decimalPtr(d("3000"))
	assert.Equal(t, 17, GenerateMortgageSimulation(state).PayoffActual)
}

func TestGenerateMortgageSimulation_OffsetOnBothPaths(t *testing.T) {
	state := loanState("400000", "5", domain.RepaymentMonthly)
	state.Mortgage.OffsetBalance = d("100000")
	minRepay := MinimumRepayment(state.Mortgage)
	state.Mortgage.UserRepayment = &minRepay

	sim := GenerateMortgageSimulation(state)

	for _, row := range sim.Data {
		assert.True(t, row.BalanceStandard.Equal(row.BalanceActual), "year %d: %s vs %s", row.Year, row.BalanceStandard, row.BalanceActual)
		assert.True(t, row.Redraw.IsZero())
	}
	// the offset-reduced payment clears the interest-bearing part only
	assertNear(t, 100000, sim.Data[30].BalanceActual, 0.05)
}

func TestGenerateMortgageSimulation_PropertyAndEquity(t *testing.T) {
	state := loanState("400000", "5", domain.RepaymentMonthly)
	state.Mortgage.PropertyValue = d("645000")
	state.Mortgage.GrowthRate = d("3.8")
	state.Mortgage.UserRepayment = decimalPtr(d("2500"))

	sim := GenerateMortgageSimulation(state)

	assertNear(t, 669510, sim.Data[1].Property, 0.05, "monthly compounding lands on the annual rate")
	for _, row := range sim.Data {
		assert.True(t, row.Equity.Equal(row.Property.Sub(row.BalanceActual)), "year %d", row.Year)
	}
}

func TestGenerateMortgageSimulation_RowsAddUp(t *testing.T) {
	for _, repayment := range []string{"2200", "2500", "3000"} {
		t.Run(repayment, func(t *testing.T) {
			state := loanState("400000", "5", domain.RepaymentMonthly)
			state.Mortgage.PropertyValue = d("645000")
			state.Mortgage.GrowthRate = d("3.8")
			state.Mortgage.UserRepayment = decimalPtr(d(repayment))

			for _, row := range GenerateMortgageSimulation(state).Data {
				assert.True(t, row.Equity.Equal(row.Property.Sub(row.BalanceActual)),
					"year %d: equity %s, property %s, balance %s", row.Year, row.Equity, row.Property, row.BalanceActual)
				assert.True(t, row.Redraw.Equal(floorZero(row.BalanceStandard.Sub(row.BalanceActual))),
					"year %d: redraw %s, standard %s, actual %s", row.Year, row.Redraw, row.BalanceStandard, row.BalanceActual)
				assert.True(t, row.Equity.Equal(row.Equity.Round(2)), "year %d: equity in whole cents", row.Year)
			}
		})
	}
}

func TestGenerateMortgageSimulation_NothingOwed(t *testing.T) {
	state := loanState("0", "5", domain.RepaymentMonthly)

	sim := GenerateMortgageSimulation(state)

	assert.Equal(t, 0, sim.PayoffActual)
	assert.Equal(t, 0, sim.PayoffStandard)
	assert.False(t, sim.BelowInterest)
}

func TestGenerateMortgageSimulation_Deterministic(t *testing.T) {
	state := domain.DefaultState()
	before := state.DeepCopy()

	first := GenerateMortgageSimulation(state)
	second := GenerateMortgageSimulation(state)

	assert.Equal(t, first, second)
	assert.Equal(t, before, state, "input must not be mutated")
}

func TestGenerateMortgageSimulation_DefaultHousehold(t *testing.T) {
	sim := GenerateMortgageSimulation(domain.DefaultState())

	assertDecimal(t, "1200", sim.ActualRepayment, "linked budget")
	assert.Equal(t, domain.RepaymentFortnightly, sim.RepaymentFreq)
	assert.True(t, sim.ActualRepayment.GreaterThan(sim.MinRepayment))
	assert.LessOrEqual(t, sim.PayoffActual, sim.PayoffStandard)
	assertNear(t, 746.86, sim.FirstPeriodInterest, 0.01)
}

func TestCalculateRepaymentCapacity(t *testing.T) {
	state := domain.DefaultState()

	capacity := CalculateRepaymentCapacity(state, d("10000"))

	assertDecimal(t, "1200", capacity.BudgetRepayment, "budget")
	assertNear(t, 1584.6154, capacity.MaxCapacity, 0.0001)
	assert.False(t, capacity.BudgetBelowMinimum)

	state.Expenses[0].Amount = d("500")
	assert.True(t, CalculateRepaymentCapacity(state, d("10000")).BudgetBelowMinimum)
}
