// Package scenes renders the tabs of the planner TUI from an engine report.
package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// row renders a label and a right-aligned money value
func row(label string, amount decimal.Decimal, width int) string {
	value := tuistyles.FormatCurrency(amount)
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(value), 1)
	return tuistyles.MetricLabelStyle.Render(label) + strings.Repeat(" ", gap) + tuistyles.MetricValueStyle.Render(value)
}

// section renders a titled panel of rows
func section(title string, rows []string, width int) string {
	body := tuistyles.TableHeaderStyle.Render(title) + "\n" + strings.Join(rows, "\n")
	return tuistyles.PanelStyle.Width(width).Render(body)
}

// yearLabels returns year numbers as chart labels
func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y)
	}
	return labels
}

// chartWidth fits a chart into the terminal, leaving room for the panel border
func chartWidth(width int) int {
	return min(max(width-4, 40), 100)
}
