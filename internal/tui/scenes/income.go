package scenes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/tui/components"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
)

// RenderIncome shows the annual income statement and where the money goes
func RenderIncome(report *domain.Report, width int) string {
	b := report.Breakdown
	cards := []*components.MetricCard{
		components.NewMetricCard("Net cash position", tuistyles.FormatCurrency(b.NetCashPosition)).WithDescription("per year"),
		components.NewMetricCard("Total tax", tuistyles.FormatCurrency(b.TotalTaxBill)),
		components.NewMetricCard("Surplus", tuistyles.FormatCurrency(report.Surplus)).
			WithDescription(tuistyles.FormatCurrency(report.CashFlow.SurplusDisplay) + " per " + string(report.CashFlow.DisplayUnit)),
	}

	panelWidth := max(width/2-2, 36)
	inner := panelWidth - 4

	statement := section("Income statement", []string{
		row("Gross cash", b.TotalGrossCash, inner),
		row("Salary packaging", b.TotalPackaging, inner),
		row("Salary sacrifice", b.TotalSacrifice, inner),
		row("Deductions", b.OtherDeductions, inner),
		row("Taxable income", b.TaxableIncome, inner),
		row("Income tax", b.BaseTax, inner),
		row("Medicare levy", b.Medicare, inner),
		row("Medicare levy surcharge", b.MLS, inner),
		row("HECS repayment", b.HECSEquivalent, inner),
		row("Tax-free income", b.TaxFreeIncome, inner),
		row("Bank take-home", b.BankTakeHome, inner),
		row("Employer super", b.TotalSuper, inner),
	}, panelWidth)

	spend := make([]string, 0, len(report.CashFlow.Categories)+1)
	for _, c := range report.CashFlow.Categories {
		spend = append(spend, row(c.Category, c.Annual, inner))
	}
	spend = append(spend, row("Total expenses", report.CashFlow.TotalExpenses, inner))
	if len(report.CashFlow.UnmappedCategories) > 0 {
		spend = append(spend, tuistyles.WarningStyle.Render("Unmapped: "+strings.Join(report.CashFlow.UnmappedCategories, ", ")))
	}
	spending := section("Spending", spend, panelWidth)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		lipgloss.JoinHorizontal(lipgloss.Top, statement, spending),
	)
}

