package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error)
	Name() string
}

func formatParamValue(p domain.SensitivityParameter, v decimal.Decimal) string {
	if p.Unit == "dollars" {
		return FormatCurrency(v.Round(2))
	}
	return v.StringFixed(2) + "%"
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no results in analysis")
	}
	var buf bytes.Buffer
	param := analysis.Parameter

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintf(&buf, "Base Case: %s\n", formatParamValue(param, param.BaseValue))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n",
		formatParamValue(param, param.MinValue), formatParamValue(param, param.MaxValue), param.Steps)
	fmt.Fprintf(&buf, "Description: %s\n", param.Description)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-16s %-12s %-8s %-16s %-16s\n", "Value", "FIRE", "Payoff", "Final net worth", "Change")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for _, p := range analysis.Points {
		value := formatParamValue(param, p.Value)
		if p.Value.Equal(param.BaseValue) {
			value += " ← BASE"
		}
		fmt.Fprintf(&buf, "%-16s %-12s %-8d %-16s %-16s\n",
			value, FormatYear(p.FireYear), p.PayoffYear,
			FormatCurrency(p.FinalNetWorth), FormatCurrency(p.NetWorthChange))
	}
	fmt.Fprintln(&buf)

	s := analysis.Summary
	fmt.Fprintf(&buf, "Net worth spread: %s (%s of base)\n", FormatCurrency(s.NetWorthSpread), FormatPercentage(s.SpreadPercent))
	fmt.Fprintf(&buf, "FIRE year range: %s to %s\n", FormatYear(s.EarliestFireYear), FormatYear(s.LatestFireYear))
	fmt.Fprintf(&buf, "RISK LEVEL: %s\n", s.RiskLevel)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RECOMMENDATIONS:")
	for _, rec := range s.Recommendations {
		fmt.Fprintf(&buf, "  • %s\n", rec)
	}
	return buf.String(), nil
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no results in analysis")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"parameter_name", "parameter_value", "fire_year", "payoff_year", "final_net_worth", "net_worth_change"}); err != nil {
		return "", err
	}
	for _, p := range analysis.Points {
		fire := ""
		if p.FireYear != nil {
			fire = strconv.Itoa(*p.FireYear)
		}
		row := []string{
			analysis.Parameter.Name,
			p.Value.String(),
			fire,
			strconv.Itoa(p.PayoffYear),
			p.FinalNetWorth.StringFixed(2),
			p.NetWorthChange.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}
