package compare

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func sampleReport(finalNW int64, fireYear *int, payoff int) *domain.Report {
	data := make([]domain.NetWorthYear, 31)
	for i := range data {
		data[i] = domain.NetWorthYear{Year: i, NetWorth: decimal.NewFromInt(finalNW * int64(i) / 30)}
	}
	return &domain.Report{
		Breakdown: domain.NetIncomeBreakdown{
			NetCashPosition: decimal.NewFromInt(90000),
			TotalTaxBill:    decimal.NewFromInt(25000),
		},
		Surplus:  decimal.NewFromInt(20000),
		Mortgage: &domain.MortgageSimulation{PayoffActual: payoff},
		NetWorth: domain.NetWorthSimulation{
			Data:       data,
			FireTarget: decimal.NewFromInt(1000000),
			FireYear:   fireYear,
		},
	}
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	mc := NewMetricsCalculator()
	result := mc.CalculateMetrics("base", sampleReport(3000000, intPtr(12), 18))

	assert.Equal(t, "base", result.ScenarioName)
	assert.True(t, result.NetCashPosition.Equal(decimal.NewFromInt(90000)))
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(25000)))
	require.NotNil(t, result.PayoffYears)
	assert.Equal(t, 18, *result.PayoffYears)
	assert.Equal(t, 12, *result.FireYear)
	assert.True(t, result.Year10NetWorth.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, result.FinalNetWorth.Equal(decimal.NewFromInt(3000000)))
}

func TestMetricsCalculator_Renting(t *testing.T) {
	report := sampleReport(100, nil, 0)
	report.Mortgage = nil
	result := NewMetricsCalculator().CalculateMetrics("renter", report)
	assert.Nil(t, result.PayoffYears)
	assert.Nil(t, result.FireYear)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics("base", sampleReport(2000000, intPtr(15), 20))
	alt := mc.CalculateMetrics("alt", sampleReport(2500000, intPtr(12), 16))
	alt.Surplus = decimal.NewFromInt(25000)

	alt = mc.CalculateComparison(alt, base)
	assert.True(t, alt.SurplusDiffFromBase.Equal(decimal.NewFromInt(5000)))
	assert.True(t, alt.NetWorthDiffFromBase.Equal(decimal.NewFromInt(500000)))
	assert.True(t, alt.NetWorthPctFromBase.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, -4, *alt.PayoffDiffFromBase)
	assert.Equal(t, -3, *alt.FireYearDiffFromBase)
}

func TestMetricsCalculator_CalculateComparison_MissingYears(t *testing.T) {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics("base", sampleReport(0, nil, 20))
	alt := mc.CalculateComparison(mc.CalculateMetrics("alt", sampleReport(100, intPtr(5), 20)), base)
	assert.Nil(t, alt.FireYearDiffFromBase)
	assert.True(t, alt.NetWorthPctFromBase.IsZero(), "no percentage against a zero base")
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		base     ComparisonResult
		alts     []ComparisonResult
		contains []string
	}{
		{
			name: "no alternatives",
			base: ComparisonResult{ScenarioName: "base"},
		},
		{
			name: "earlier fire and payoff",
			base: ComparisonResult{ScenarioName: "base", FireYear: intPtr(15), PayoffYears: intPtr(20), FinalNetWorth: decimal.NewFromInt(100)},
			alts: []ComparisonResult{
				{ScenarioName: "aggressive", FireYear: intPtr(11), PayoffYears: intPtr(14), FinalNetWorth: decimal.NewFromInt(50)},
			},
			contains: []string{
				"Earliest FIRE: aggressive reaches the target 4 years sooner",
				"Fastest Payoff: aggressive clears the mortgage 6 years sooner",
			},
		},
		{
			name: "base never reaches fire",
			base: ComparisonResult{ScenarioName: "base", FinalNetWorth: decimal.NewFromInt(100)},
			alts: []ComparisonResult{
				{ScenarioName: "frugal", FireYear: intPtr(22), FinalNetWorth: decimal.NewFromInt(400)},
			},
			contains: []string{
				"frugal reaches the target in year 22",
				"Highest Net Worth: frugal ends $300 ahead",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.base
			recs := GenerateRecommendations(&ComparisonSet{BaseResult: &base, AlternativeResults: tt.alts})
			if len(tt.contains) == 0 {
				assert.Empty(t, recs)
			}
			joined := ""
			for _, r := range recs {
				joined += r + "\n"
			}
			for _, want := range tt.contains {
				assert.Contains(t, joined, want)
			}
		})
	}
}
