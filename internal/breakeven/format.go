package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Target:              %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Target Year:         %d\n", result.Request.TargetYear))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("SOLUTION\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	label := tf.valueLabel(result)
	sb.WriteString(fmt.Sprintf("%-21s$%s\n", "Required "+label+":", tf.formatCurrency(result.OptimalValue)))
	sb.WriteString(fmt.Sprintf("%-21s$%s\n", "Current "+label+":", tf.formatCurrency(result.BaseValue)))
	sb.WriteString(fmt.Sprintf("%-21s%s$%s\n", "Difference:",
		tf.deltaSymbol(result.DiffFromBase), tf.formatCurrency(result.DiffFromBase.Abs())))
	sb.WriteString("\n")

	sb.WriteString("OUTCOME\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-21s%s\n", "At solution:", tf.formatYear(result.AchievedYear)))
	sb.WriteString(fmt.Sprintf("%-21s%s\n", "Currently:", tf.formatYear(result.BaseYear)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats results from solving several targets
func (tf *TableFormatter) FormatMulti(result *MultiTargetResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("BREAK-EVEN TARGETS FOR YEAR %d\n", result.TargetYear))
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-22s %15s %15s %12s %12s\n",
		"Target", "Required", "Current", "At solution", "Currently"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		sb.WriteString(fmt.Sprintf("%-22s %15s %15s %12s %12s\n",
			tf.truncate(string(res.Request.Target), 22),
			"$"+tf.formatShort(res.OptimalValue),
			"$"+tf.formatShort(res.BaseValue),
			tf.formatYear(res.AchievedYear),
			tf.formatYear(res.BaseYear)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMulti formats multi-target results as JSON
func (jf *JSONFormatter) FormatMulti(result *MultiTargetResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) valueLabel(result *OptimizationResult) string {
	if result.Request.Target == TargetRepaymentForPayoff {
		return "per " + string(result.RepaymentFreq)
	}
	return "surplus/yr"
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatYear(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *year)
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
