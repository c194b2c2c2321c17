package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const tableWidth = 92

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("FIRE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Snapshot: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Surplus/yr",
		numWidth, "Payoff",
		numWidth, "FIRE",
		numWidth, "Year 10 NW",
		numWidth, "Final NW"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			for _, t := range alt.Transforms {
				sb.WriteString(fmt.Sprintf("  - %s\n", t))
			}

			sb.WriteString(fmt.Sprintf("  Final Net Worth:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.NetWorthDiffFromBase),
				tf.formatDecimal(alt.NetWorthDiffFromBase.Abs()),
				alt.NetWorthPctFromBase.StringFixed(1)))

			if !alt.SurplusDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Annual Surplus:   %s$%s\n",
					tf.deltaSymbol(alt.SurplusDiffFromBase),
					tf.formatDecimal(alt.SurplusDiffFromBase.Abs())))
			}
			if alt.PayoffDiffFromBase != nil && *alt.PayoffDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  Mortgage Payoff:  %+d years\n", *alt.PayoffDiffFromBase))
			}
			if alt.FireYearDiffFromBase != nil && *alt.FireYearDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  FIRE Year:        %+d years\n", *alt.FireYearDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatMoney(result.Surplus),
		numWidth, yearsOr(result.PayoffYears, "renting"),
		numWidth, yearsOr(result.FireYear, "not reached"),
		numWidth, tf.formatMoney(result.Year10NetWorth),
		numWidth, tf.formatMoney(result.FinalNetWorth))
}

func yearsOr(years *int, fallback string) string {
	if years == nil {
		return fallback
	}
	return fmt.Sprintf("%d years", *years)
}

func (tf *TableFormatter) formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + tf.formatDecimal(d.Abs())
	}
	return "$" + tf.formatDecimal(d)
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.NetWorthDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.NetWorthDiffFromBase))
		} else if alt.NetWorthDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.NetWorthDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
