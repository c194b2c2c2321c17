package scenes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/output"
	"github.com/rgehrsitz/fireplan/internal/tui/components"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// RenderNetWorth shows the projection against the FIRE target
func RenderNetWorth(report *domain.Report, width int) string {
	nw := report.NetWorth
	pos := report.Position

	fire := components.NewMetricCard("FIRE", output.FormatYear(nw.FireYear))
	if nw.FireYear != nil {
		fire.WithDescription(fmt.Sprintf("%d years from now", *nw.FireYear))
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Net worth today", tuistyles.FormatCurrency(pos.NetWorth)),
		components.NewMetricCard("FIRE target", tuistyles.FormatCurrency(nw.FireTarget)),
		components.NewMetricCard("Velocity", tuistyles.FormatCurrency(nw.Velocity)).WithDescription("added per year"),
		fire,
	}

	progress := components.NewProgressBar(pos.NetWorth, nw.FireTarget).
		WithWidth(max(chartWidth(width)-30, 10)).
		WithLabel("Progress to FIRE")

	years := make([]int, len(nw.Data))
	worth := make([]decimal.Decimal, len(nw.Data))
	target := make([]decimal.Decimal, len(nw.Data))
	for i, y := range nw.Data {
		years[i] = y.Year
		worth[i] = y.NetWorth
		target[i] = y.FireTarget
	}
	chart := components.NewASCIIChart("Net worth vs FIRE target").
		WithSize(chartWidth(width), 12).
		AddDecimalSeries("Net worth", worth, tuistyles.ColorChartLine1).
		AddDecimalSeries("FIRE target", target, tuistyles.ColorChartLine2).
		WithLabels(yearLabels(years))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 4),
		progress.Render(),
		tuistyles.PanelStyle.Render(chart.Render()),
	)
}
