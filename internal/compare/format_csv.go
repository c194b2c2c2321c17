package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Net Cash Position",
		"Surplus",
		"Total Tax",
		"Payoff Years",
		"FIRE Target",
		"FIRE Year",
		"Year 10 Net Worth",
		"Final Net Worth",
		"Surplus Diff from Base",
		"Payoff Diff",
		"FIRE Year Diff",
		"Net Worth Diff from Base",
		"Net Worth % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.NetCashPosition.StringFixed(2),
		result.Surplus.StringFixed(2),
		result.TotalTax.StringFixed(2),
		formatInt(result.PayoffYears),
		result.FireTarget.StringFixed(2),
		formatInt(result.FireYear),
		result.Year10NetWorth.StringFixed(2),
		result.FinalNetWorth.StringFixed(2),
		result.SurplusDiffFromBase.StringFixed(2),
		formatInt(result.PayoffDiffFromBase),
		formatInt(result.FireYearDiffFromBase),
		result.NetWorthDiffFromBase.StringFixed(2),
		result.NetWorthPctFromBase.StringFixed(2),
	}
}

// formatInt renders an optional count; blank means not applicable
func formatInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
