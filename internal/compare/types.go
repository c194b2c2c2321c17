package compare

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string   `json:"scenarioName"`
	Description  string   `json:"description,omitempty"`
	Transforms   []string `json:"transforms,omitempty"`

	// Key Metrics
	NetCashPosition decimal.Decimal `json:"netCashPosition"`
	Surplus         decimal.Decimal `json:"surplus"`
	TotalTax        decimal.Decimal `json:"totalTax"`
	PayoffYears     *int            `json:"payoffYears,omitempty"` // nil when renting
	FireTarget      decimal.Decimal `json:"fireTarget"`
	FireYear        *int            `json:"fireYear,omitempty"`
	Year10NetWorth  decimal.Decimal `json:"year10NetWorth"`
	FinalNetWorth   decimal.Decimal `json:"finalNetWorth"`

	// Comparison to Base
	SurplusDiffFromBase   decimal.Decimal `json:"surplusDiffFromBase"`
	PayoffDiffFromBase    *int            `json:"payoffDiffFromBase,omitempty"`
	FireYearDiffFromBase  *int            `json:"fireYearDiffFromBase,omitempty"`
	NetWorthDiffFromBase  decimal.Decimal `json:"netWorthDiffFromBase"`
	NetWorthPctFromBase   decimal.Decimal `json:"netWorthPctFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from engine reports
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one report
func (mc *MetricsCalculator) CalculateMetrics(name string, report *domain.Report) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:    name,
		NetCashPosition: report.Breakdown.NetCashPosition,
		Surplus:         report.Surplus,
		TotalTax:        report.Breakdown.TotalTaxBill,
		FireTarget:      report.NetWorth.FireTarget,
		FireYear:        report.NetWorth.FireYear,
	}
	if report.Mortgage != nil {
		payoff := report.Mortgage.PayoffActual
		result.PayoffYears = &payoff
	}

	data := report.NetWorth.Data
	if len(data) > 10 {
		result.Year10NetWorth = data[10].NetWorth
	}
	if len(data) > 0 {
		result.FinalNetWorth = data[len(data)-1].NetWorth
	}
	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.SurplusDiffFromBase = scenario.Surplus.Sub(base.Surplus)
	scenario.NetWorthDiffFromBase = scenario.FinalNetWorth.Sub(base.FinalNetWorth)
	if !base.FinalNetWorth.IsZero() {
		scenario.NetWorthPctFromBase = scenario.NetWorthDiffFromBase.
			Div(base.FinalNetWorth.Abs()).
			Mul(decimal.NewFromInt(100))
	}
	scenario.PayoffDiffFromBase = intDiff(scenario.PayoffYears, base.PayoffYears)
	scenario.FireYearDiffFromBase = intDiff(scenario.FireYear, base.FireYear)
	return scenario
}

func intDiff(a, b *int) *int {
	if a == nil || b == nil {
		return nil
	}
	diff := *a - *b
	return &diff
}

func earlier(a, b *int) bool {
	if a == nil {
		return false
	}
	return b == nil || *a < *b
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	bestFire := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if earlier(alt.FireYear, bestFire.FireYear) {
			bestFire = alt
		}
	}
	if bestFire != base {
		if base.FireYear == nil {
			recommendations = append(recommendations,
				fmt.Sprintf("Earliest FIRE: %s reaches the target in year %d; the base plan never does",
					bestFire.ScenarioName, *bestFire.FireYear))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Earliest FIRE: %s reaches the target %d years sooner",
					bestFire.ScenarioName, *base.FireYear-*bestFire.FireYear))
		}
	}

	bestWorth := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalNetWorth.GreaterThan(bestWorth.FinalNetWorth) {
			bestWorth = alt
		}
	}
	if bestWorth != base {
		diff := bestWorth.FinalNetWorth.Sub(base.FinalNetWorth)
		recommendations = append(recommendations,
			"Highest Net Worth: "+bestWorth.ScenarioName+" ends $"+diff.StringFixed(0)+
				" ahead of the base plan")
	}

	bestPayoff := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if earlier(alt.PayoffYears, bestPayoff.PayoffYears) {
			bestPayoff = alt
		}
	}
	if bestPayoff != base && base.PayoffYears != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest Payoff: %s clears the mortgage %d years sooner",
				bestPayoff.ScenarioName, *base.PayoffYears-*bestPayoff.PayoffYears))
	}

	return recommendations
}
