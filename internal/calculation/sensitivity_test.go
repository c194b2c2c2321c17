package calculation

import (
	"context"
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParameterValues(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)

	values := sa.generateParameterValues(domain.SensitivityParameter{MinValue: d("3"), MaxValue: d("5"), Steps: 5})
	require.Len(t, values, 5)
	for i, want := range []string{"3", "3.5", "4", "4.5", "5"} {
		assertDecimal(t, want, values[i], want)
	}

	single := sa.generateParameterValues(domain.SensitivityParameter{MinValue: d("7"), MaxValue: d("9"), Steps: 1})
	require.Len(t, single, 1)
	assertDecimal(t, "7", single[0], "single step")
}

func TestApplyParameter(t *testing.T) {
	state := domain.DefaultState()

	modified, err := ApplyParameter(state, "asset_growth", d("5"))
	require.NoError(t, err)
	for _, a := range modified.Assets {
		assertDecimal(t, "5", a.GrowthRate, a.Name)
	}
	assertDecimal(t, "13.14", state.Assets[0].GrowthRate, "original untouched")

	modified, err = ApplyParameter(state, "interest_rate", d("6.5"))
	require.NoError(t, err)
	assertDecimal(t, "6.5", modified.Mortgage.InterestRate, "rate")

	_, err = ApplyParameter(state, "inflation", d("3"))
	assert.Error(t, err)
}

func TestAnalyzeSingleParameter_Surplus(t *testing.T) {
	state := investorState("100000", "7")
	sa := NewSensitivityAnalyzer(nil)

	analysis, err := sa.AnalyzeSingleParameter(context.Background(), state, domain.SurplusParam)

	require.NoError(t, err)
	require.Len(t, analysis.Points, domain.SurplusParam.Steps)
	for i := 1; i < len(analysis.Points); i++ {
		assert.True(t, analysis.Points[i].FinalNetWorth.GreaterThan(analysis.Points[i-1].FinalNetWorth),
			"more surplus must end with more net worth")
	}
	assert.True(t, analysis.Summary.NetWorthSpread.IsPositive())
	assert.NotEmpty(t, analysis.Summary.RiskLevel)
	assert.NotEmpty(t, analysis.Summary.Recommendations)
}

func TestAnalyzeSingleParameter_InterestRate(t *testing.T) {
	state := domain.DefaultState()
	sa := NewSensitivityAnalyzer(nil)

	analysis, err := sa.AnalyzeSingleParameter(context.Background(), state, domain.InterestRateParam)

	require.NoError(t, err)
	assertDecimal(t, "5.39", analysis.Parameter.BaseValue, "base value read from the snapshot")
	first, last := analysis.Points[0], analysis.Points[len(analysis.Points)-1]
	assert.LessOrEqual(t, first.PayoffYear, last.PayoffYear, "higher rates never pay off sooner")
}

func TestAnalyzeSingleParameter_Errors(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)

	_, err := sa.AnalyzeSingleParameter(context.Background(), domain.DefaultState(), domain.SensitivityParameter{Name: "bogus", Steps: 2})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sa.AnalyzeSingleParameter(ctx, domain.DefaultState(), domain.SWRParam)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSensitivitySummary_RiskLevel(t *testing.T) {
	tests := []struct {
		spread string
		want   string
	}{
		{"2", "LOW"},
		{"10", "MEDIUM"},
		{"20", "HIGH"},
		{"45", "CRITICAL"},
	}

	for _, tt := range tests {
		s := domain.SensitivitySummary{SpreadPercent: decimal.RequireFromString(tt.spread)}
		assert.Equal(t, tt.want, s.DetermineRiskLevel(), tt.spread)
	}
}
