package calculation

import (
	"strings"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the income, mortgage and net worth calculations.
// Every method is a pure function of the snapshot it is given.
type CalculationEngine struct {
	NetIncomeCalc *NetIncomeCalculator
	DisplayUnit   domain.FrequencyUnit
	Logger        Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		NetIncomeCalc: NewNetIncomeCalculator(),
		DisplayUnit:   domain.FrequencyMonth,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetThresholdPolicy switches how the tax-free threshold is applied
func (ce *CalculationEngine) SetThresholdPolicy(p ThresholdPolicy) {
	ce.NetIncomeCalc.Policy = p
}

// CalculateNetIncomeBreakdown computes the annual income statement
func (ce *CalculationEngine) CalculateNetIncomeBreakdown(state *domain.AppState) domain.NetIncomeBreakdown {
	if bad := unknownUnits(state); len(bad) > 0 {
		ce.Logger.Warnf("unknown frequency unit treated as annual: %s", strings.Join(bad, ", "))
	}
	return ce.NetIncomeCalc.Calculate(state)
}

// Surplus is the annual cash left after every budgeted expense
func (ce *CalculationEngine) Surplus(state *domain.AppState) decimal.Decimal {
	return SurplusAnnual(ce.CalculateNetIncomeBreakdown(state), state)
}

// Run computes every output for one snapshot. The mortgage simulation is
// skipped for renters.
func (ce *CalculationEngine) Run(state *domain.AppState) *domain.Report {
	breakdown := ce.CalculateNetIncomeBreakdown(state)
	surplus := SurplusAnnual(breakdown, state)

	report := &domain.Report{
		Name:      state.UserSettings.Name,
		Breakdown: breakdown,
		CashFlow:  CalculateCashFlow(state, breakdown.NetCashPosition, ce.DisplayUnit),
		Surplus:   surplus,
		Position:  CurrentPosition(state),
	}
	if !state.UserSettings.IsRenting {
		sim := ce.GenerateMortgageSimulation(state)
		capacity := CalculateRepaymentCapacity(state, surplus)
		report.Mortgage = &sim
		report.Capacity = &capacity
	}
	report.NetWorth = ce.GenerateNetWorthSimulation(state, surplus)

	ce.Logger.Infof("report: net cash %s surplus %s fire target %s",
		breakdown.NetCashPosition.StringFixed(2), surplus.StringFixed(2), report.NetWorth.FireTarget.StringFixed(2))
	return report
}
