package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/domain"
)

// ConsoleFormatter renders the full report as aligned text
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	if report.Name != "" {
		fmt.Fprintf(&buf, "FIRE PLAN: %s\n", report.Name)
	} else {
		fmt.Fprintln(&buf, "FIRE PLAN")
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeBreakdown(&buf, report.Breakdown)
	writeCashFlow(&buf, report.CashFlow)
	if report.Mortgage != nil {
		writeMortgage(&buf, report.Mortgage, report.Capacity)
	}
	writeNetWorth(&buf, report.Position, report.NetWorth)

	return buf.Bytes(), nil
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-28s %16s\n", label+":", value)
}

func writeBreakdown(buf *bytes.Buffer, b domain.NetIncomeBreakdown) {
	fmt.Fprintln(buf, "INCOME (annual)")
	fmt.Fprintln(buf, strings.Repeat("-", 48))
	line(buf, "Gross cash income", FormatCurrency(b.TotalGrossCash))
	line(buf, "Taxable gross", FormatCurrency(b.TaxableGross))
	line(buf, "Salary packaging", FormatCurrency(b.TotalPackaging))
	line(buf, "Salary sacrifice", FormatCurrency(b.TotalSacrifice))
	line(buf, "Admin fees", FormatCurrency(b.TotalAdminFees))
	line(buf, "Other deductions", FormatCurrency(b.OtherDeductions))
	line(buf, "Taxable income", FormatCurrency(b.TaxableIncome))
	line(buf, "Adjusted taxable income", FormatCurrency(b.AdjustedIncome))
	fmt.Fprintln(buf)
	line(buf, "Income tax", FormatCurrency(b.BaseTax))
	line(buf, "Medicare levy", FormatCurrency(b.Medicare))
	line(buf, "Medicare levy surcharge", FormatCurrency(b.MLS))
	line(buf, "Study loan repayment", FormatCurrency(b.HECSEquivalent))
	line(buf, "Total tax", FormatCurrency(b.TotalTaxBill))
	fmt.Fprintln(buf)
	line(buf, "Net salary", FormatCurrency(b.NetSalary))
	line(buf, "Tax-free income", FormatCurrency(b.TaxFreeIncome))
	line(buf, "Bank take-home", FormatCurrency(b.BankTakeHome))
	line(buf, "Net cash position", FormatCurrency(b.NetCashPosition))
	line(buf, "Super contributions", FormatCurrency(b.TotalSuper))
	fmt.Fprintln(buf)
}

func writeCashFlow(buf *bytes.Buffer, cf domain.CashFlow) {
	fmt.Fprintf(buf, "CASH FLOW (per %s)\n", cf.DisplayUnit)
	fmt.Fprintln(buf, strings.Repeat("-", 48))
	for _, c := range cf.Categories {
		if c.Annual.IsZero() {
			continue
		}
		line(buf, c.Category, FormatCurrency(c.Display.Round(2)))
	}
	fmt.Fprintln(buf)
	for _, a := range cf.Accounts {
		line(buf, "→ "+a.Name, FormatCurrency(a.Display.Round(2)))
	}
	line(buf, "Total expenses (annual)", FormatCurrency(cf.TotalExpenses))
	line(buf, "Surplus", FormatCurrency(cf.SurplusDisplay.Round(2)))
	if len(cf.UnmappedCategories) > 0 {
		fmt.Fprintf(buf, "  Unmapped categories: %s\n", strings.Join(cf.UnmappedCategories, ", "))
	}
	fmt.Fprintln(buf)
}

func writeMortgage(buf *bytes.Buffer, m *domain.MortgageSimulation, capacity *domain.RepaymentCapacity) {
	fmt.Fprintln(buf, "MORTGAGE")
	fmt.Fprintln(buf, strings.Repeat("-", 48))
	fmt.Fprintf(buf, "  Repayments are per %s\n", m.RepaymentFreq)
	line(buf, "Minimum repayment", FormatCurrency(m.MinRepayment.Round(2)))
	line(buf, "Actual repayment", FormatCurrency(m.ActualRepayment.Round(2)))
	line(buf, "First period interest", FormatCurrency(m.FirstPeriodInterest.Round(2)))
	line(buf, "Payoff (actual)", fmt.Sprintf("%d years", m.PayoffActual))
	line(buf, "Payoff (standard)", fmt.Sprintf("%d years", m.PayoffStandard))
	if capacity != nil {
		line(buf, "Max repayment capacity", FormatCurrency(capacity.MaxCapacity.Round(2)))
	}
	if m.BelowInterest {
		fmt.Fprintln(buf, "  WARNING: repayment does not cover interest; the balance grows")
	}
	if capacity != nil && capacity.BudgetBelowMinimum {
		fmt.Fprintln(buf, "  WARNING: budgeted repayment is below the minimum repayment")
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-5s %16s %16s %16s %16s\n", "Year", "Actual", "Standard", "Equity", "Redraw")
	for _, y := range m.Data {
		if y.Year%5 != 0 && y.Year != m.PayoffActual {
			continue
		}
		fmt.Fprintf(buf, "  %-5d %16s %16s %16s %16s\n", y.Year,
			FormatCurrency(y.BalanceActual), FormatCurrency(y.BalanceStandard),
			FormatCurrency(y.Equity), FormatCurrency(y.Redraw))
	}
	fmt.Fprintln(buf)
}

func writeNetWorth(buf *bytes.Buffer, p domain.Position, nw domain.NetWorthSimulation) {
	fmt.Fprintln(buf, "NET WORTH")
	fmt.Fprintln(buf, strings.Repeat("-", 48))
	line(buf, "Liquid assets", FormatCurrency(p.LiquidAssets))
	line(buf, "Property", FormatCurrency(p.Property))
	line(buf, "Mortgage", FormatCurrency(p.Mortgage))
	line(buf, "Other liabilities", FormatCurrency(p.Liabilities))
	line(buf, "Net worth today", FormatCurrency(p.NetWorth))
	fmt.Fprintln(buf)
	line(buf, "FIRE target", FormatCurrency(nw.FireTarget))
	line(buf, "Wealth velocity (annual)", FormatCurrency(nw.Velocity.Round(2)))
	line(buf, "FIRE reached", FormatYear(nw.FireYear))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-5s %16s %16s %16s\n", "Year", "Net worth", "FIRE target", "Mortgage")
	for _, y := range nw.Data {
		if y.Year%5 != 0 {
			continue
		}
		fmt.Fprintf(buf, "  %-5d %16s %16s %16s\n", y.Year,
			FormatCurrency(y.NetWorth), FormatCurrency(y.FireTarget), FormatCurrency(y.Mortgage))
	}
}
