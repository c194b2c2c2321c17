package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter represents a parameter to sweep in sensitivity analysis
type SensitivityParameter struct {
	Name        string          `yaml:"name" json:"name"`
	MinValue    decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue    decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps       int             `yaml:"steps" json:"steps"`
	BaseValue   decimal.Decimal `yaml:"base_value" json:"baseValue"`
	Unit        string          `yaml:"unit" json:"unit"` // "percent" or "dollars"
	Description string          `yaml:"description" json:"description"`
}

// SensitivityPoint is the outcome of one parameter value
type SensitivityPoint struct {
	Value          decimal.Decimal `json:"value"`
	FireYear       *int            `json:"fireYear,omitempty"`
	PayoffYear     int             `json:"payoffYear"`
	FinalNetWorth  decimal.Decimal `json:"finalNetWorth"`
	NetWorthChange decimal.Decimal `json:"netWorthChange"` // against the base value run
}

// SensitivityAnalysis is a complete single-parameter sweep
type SensitivityAnalysis struct {
	Parameter SensitivityParameter `json:"parameter"`
	Base      SensitivityPoint     `json:"base"`
	Points    []SensitivityPoint   `json:"points"`
	Summary   SensitivitySummary   `json:"summary"`
}

// SensitivitySummary provides overall analysis summary
type SensitivitySummary struct {
	NetWorthSpread   decimal.Decimal `json:"netWorthSpread"`
	SpreadPercent    decimal.Decimal `json:"spreadPercent"`
	EarliestFireYear *int            `json:"earliestFireYear,omitempty"`
	LatestFireYear   *int            `json:"latestFireYear,omitempty"`
	RiskLevel        string          `json:"riskLevel"` // "LOW", "MEDIUM", "HIGH", "CRITICAL"
	Recommendations  []string        `json:"recommendations"`
}

// Common sensitivity parameters
var (
	InterestRateParam = SensitivityParameter{
		Name:        "interest_rate",
		MinValue:    decimal.NewFromInt(3),
		MaxValue:    decimal.NewFromInt(8),
		Steps:       6,
		Unit:        "percent",
		Description: "Mortgage interest rate",
	}

	AssetGrowthParam = SensitivityParameter{
		Name:        "asset_growth",
		MinValue:    decimal.NewFromInt(4),
		MaxValue:    decimal.NewFromInt(10),
		Steps:       7,
		Unit:        "percent",
		Description: "Growth rate applied to every asset",
	}

	PropertyGrowthParam = SensitivityParameter{
		Name:        "property_growth",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(6),
		Steps:       7,
		Unit:        "percent",
		Description: "Annual property appreciation",
	}

	SWRParam = SensitivityParameter{
		Name:        "swr",
		MinValue:    decimal.NewFromInt(3),
		MaxValue:    decimal.NewFromInt(5),
		Steps:       5,
		Unit:        "percent",
		Description: "Safe withdrawal rate",
	}

	SurplusParam = SensitivityParameter{
		Name:        "surplus",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(40000),
		Steps:       5,
		Unit:        "dollars",
		Description: "Annual surplus reinvested into assets",
	}
)

// GetCommonParameters returns a list of common sensitivity parameters
func GetCommonParameters() []SensitivityParameter {
	return []SensitivityParameter{
		InterestRateParam,
		AssetGrowthParam,
		PropertyGrowthParam,
		SWRParam,
		SurplusParam,
	}
}

// LookupParameter returns the common parameter with the given name
func LookupParameter(name string) (SensitivityParameter, bool) {
	for _, p := range GetCommonParameters() {
		if p.Name == name {
			return p, true
		}
	}
	return SensitivityParameter{}, false
}

// DetermineRiskLevel buckets the spread of final net worth as a percentage of the base run
func (ss *SensitivitySummary) DetermineRiskLevel() string {
	switch {
	case ss.SpreadPercent.LessThan(decimal.NewFromInt(5)):
		return "LOW"
	case ss.SpreadPercent.LessThan(decimal.NewFromInt(15)):
		return "MEDIUM"
	case ss.SpreadPercent.LessThan(decimal.NewFromInt(30)):
		return "HIGH"
	default:
		return "CRITICAL"
	}
}

// GenerateRecommendations generates recommendations based on sensitivity analysis
func (ss *SensitivitySummary) GenerateRecommendations(parameter string) []string {
	recommendations := []string{}

	switch ss.DetermineRiskLevel() {
	case "LOW":
		recommendations = append(recommendations, "Plan is robust to this parameter")
	case "MEDIUM":
		recommendations = append(recommendations, "Review this assumption each year")
	case "HIGH":
		recommendations = append(recommendations, "Plan is sensitive to this parameter")
		recommendations = append(recommendations, "Consider a more conservative assumption")
	case "CRITICAL":
		recommendations = append(recommendations, "Plan outcome depends heavily on this parameter")
		recommendations = append(recommendations, "Stress test with the pessimistic end of the range")
	}

	switch parameter {
	case "interest_rate":
		recommendations = append(recommendations, "Consider building the offset balance to cut rate exposure")
	case "asset_growth":
		recommendations = append(recommendations, "Diversify assets so one return assumption does not dominate")
	case "swr":
		recommendations = append(recommendations, "A lower withdrawal rate pushes the FIRE target out")
	case "surplus":
		recommendations = append(recommendations, "Every extra dollar of surplus compounds in the sink asset")
	}

	return recommendations
}
