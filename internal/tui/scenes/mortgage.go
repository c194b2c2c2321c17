package scenes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/tui/components"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// RenderMortgage shows the loan schedule against the minimum repayment path
func RenderMortgage(report *domain.Report, width int) string {
	m := report.Mortgage
	if m == nil {
		return tuistyles.PanelStyle.Render(tuistyles.InfoStyle.Render("Renting: there is no mortgage to simulate."))
	}

	freq := string(m.RepaymentFreq)
	saved := m.PayoffStandard - m.PayoffActual
	payoff := components.NewMetricCard("Payoff", fmt.Sprintf("%d years", m.PayoffActual))
	if saved > 0 {
		payoff.WithTrend(true, fmt.Sprintf("%d years sooner", saved))
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Repayment", tuistyles.FormatCurrency(m.ActualRepayment)).WithDescription("per " + freq),
		components.NewMetricCard("Minimum", tuistyles.FormatCurrency(m.MinRepayment)).WithDescription("per " + freq),
		payoff,
	}
	if report.Capacity != nil {
		cards = append(cards, components.NewMetricCard("Max capacity", tuistyles.FormatCurrency(report.Capacity.MaxCapacity)).
			WithDescription("per "+freq))
	}

	var warnings []string
	if m.BelowInterest {
		warnings = append(warnings, tuistyles.ErrorStyle.Render(fmt.Sprintf(
			"Repayment does not cover the first period's interest of %s; the balance will grow.",
			tuistyles.FormatCurrency(m.FirstPeriodInterest))))
	}
	if report.Capacity != nil && report.Capacity.BudgetBelowMinimum {
		warnings = append(warnings, tuistyles.WarningStyle.Render("The budgeted repayment is below the minimum repayment."))
	}

	years := make([]int, len(m.Data))
	actual := make([]decimal.Decimal, len(m.Data))
	standard := make([]decimal.Decimal, len(m.Data))
	equity := make([]decimal.Decimal, len(m.Data))
	for i, y := range m.Data {
		years[i] = y.Year
		actual[i] = y.BalanceActual
		standard[i] = y.BalanceStandard
		equity[i] = y.Equity
	}
	chart := components.NewASCIIChart("Loan balance").
		WithSize(chartWidth(width), 12).
		AddDecimalSeries("Actual", actual, tuistyles.ColorChartLine1).
		AddDecimalSeries("Minimum repayments", standard, tuistyles.ColorChartLine3).
		AddDecimalSeries("Equity", equity, tuistyles.ColorChartLine2).
		WithLabels(yearLabels(years))

	parts := []string{components.MetricGrid(cards, 4)}
	parts = append(parts, warnings...)
	parts = append(parts, tuistyles.PanelStyle.Render(chart.Render()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
