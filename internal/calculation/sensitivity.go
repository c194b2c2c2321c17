package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer. A nil engine
// gets a default one.
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// BaseValue reads the current value of a sweepable parameter from the snapshot
func BaseValue(state *domain.AppState, name string, surplus decimal.Decimal) (decimal.Decimal, error) {
	switch name {
	case "interest_rate":
		return state.Mortgage.InterestRate, nil
	case "property_growth":
		return state.Mortgage.GrowthRate, nil
	case "swr":
		return state.Fire.SWR, nil
	case "surplus":
		return surplus, nil
	case "asset_growth":
		if len(state.Assets) == 0 {
			return decimal.Zero, nil
		}
		total := decimal.Zero
		for _, a := range state.Assets {
			total = total.Add(a.GrowthRate)
		}
		return total.Div(decimal.NewFromInt(int64(len(state.Assets)))), nil
	}
	return decimal.Zero, fmt.Errorf("unknown sensitivity parameter %q", name)
}

// ApplyParameter writes value into a copy of the snapshot. The surplus
// parameter is not part of the snapshot and leaves it unchanged.
func ApplyParameter(state *domain.AppState, name string, value decimal.Decimal) (*domain.AppState, error) {
	modified := state.DeepCopy()
	switch name {
	case "interest_rate":
		modified.Mortgage.InterestRate = value
	case "property_growth":
		modified.Mortgage.GrowthRate = value
	case "swr":
		modified.Fire.SWR = value
	case "asset_growth":
		for i := range modified.Assets {
			modified.Assets[i].GrowthRate = value
		}
	case "surplus":
	default:
		return nil, fmt.Errorf("unknown sensitivity parameter %q", name)
	}
	return modified, nil
}

// AnalyzeSingleParameter sweeps one parameter from MinValue to MaxValue and
// records payoff year, FIRE year and final net worth at each step.
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(ctx context.Context, state *domain.AppState, parameter domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	baseSurplus := sa.calculationEngine.Surplus(state)
	baseValue, err := BaseValue(state, parameter.Name, baseSurplus)
	if err != nil {
		return nil, err
	}
	parameter.BaseValue = baseValue

	base, err := sa.evaluate(state, parameter.Name, baseValue, baseSurplus)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate base value: %w", err)
	}

	values := sa.generateParameterValues(parameter)
	points := make([]domain.SensitivityPoint, 0, len(values))
	for _, value := range values {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		point, err := sa.evaluate(state, parameter.Name, value, baseSurplus)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s=%s: %w", parameter.Name, value, err)
		}
		point.NetWorthChange = point.FinalNetWorth.Sub(base.FinalNetWorth)
		points = append(points, point)
		sa.calculationEngine.Logger.Debugf("sensitivity %s=%s final net worth %s", parameter.Name, value, point.FinalNetWorth.StringFixed(0))
	}

	summary := sa.calculateSensitivitySummary(points, base, parameter)
	return &domain.SensitivityAnalysis{
		Parameter: parameter,
		Base:      base,
		Points:    points,
		Summary:   summary,
	}, nil
}

func (sa *SensitivityAnalyzer) evaluate(state *domain.AppState, name string, value, baseSurplus decimal.Decimal) (domain.SensitivityPoint, error) {
	modified, err := ApplyParameter(state, name, value)
	if err != nil {
		return domain.SensitivityPoint{}, err
	}
	surplus := baseSurplus
	if name == "surplus" {
		surplus = value
	}

	point := domain.SensitivityPoint{Value: value}
	if !modified.UserSettings.IsRenting {
		point.PayoffYear = sa.calculationEngine.GenerateMortgageSimulation(modified).PayoffActual
	}
	nw := sa.calculationEngine.GenerateNetWorthSimulation(modified, surplus)
	point.FireYear = nw.FireYear
	point.FinalNetWorth = nw.Data[len(nw.Data)-1].NetWorth
	return point, nil
}

// generateParameterValues generates the sweep values for a parameter
func (sa *SensitivityAnalyzer) generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	values := make([]decimal.Decimal, 0, param.Steps)

	if param.Steps <= 1 {
		values = append(values, param.MinValue)
		return values
	}

	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))).Round(4))
	}
	return values
}

func (sa *SensitivityAnalyzer) calculateSensitivitySummary(points []domain.SensitivityPoint, base domain.SensitivityPoint, parameter domain.SensitivityParameter) domain.SensitivitySummary {
	summary := domain.SensitivitySummary{NetWorthSpread: decimal.Zero, SpreadPercent: decimal.Zero}
	if len(points) == 0 {
		summary.RiskLevel = summary.DetermineRiskLevel()
		return summary
	}

	low, high := points[0].FinalNetWorth, points[0].FinalNetWorth
	for _, p := range points {
		if p.FinalNetWorth.LessThan(low) {
			low = p.FinalNetWorth
		}
		if p.FinalNetWorth.GreaterThan(high) {
			high = p.FinalNetWorth
		}
		if p.FireYear != nil {
			y := *p.FireYear
			if summary.EarliestFireYear == nil || y < *summary.EarliestFireYear {
				summary.EarliestFireYear = &y
			}
			if summary.LatestFireYear == nil || y > *summary.LatestFireYear {
				summary.LatestFireYear = &y
			}
		}
	}

	summary.NetWorthSpread = high.Sub(low)
	switch {
	case !base.FinalNetWorth.IsZero():
		summary.SpreadPercent = summary.NetWorthSpread.Div(base.FinalNetWorth.Abs()).Mul(hundred).Round(2)
	case summary.NetWorthSpread.IsPositive():
		summary.SpreadPercent = hundred
	}
	summary.RiskLevel = summary.DetermineRiskLevel()
	summary.Recommendations = summary.GenerateRecommendations(parameter.Name)
	return summary
}
