package calculation

import (
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ThresholdPolicy decides whether the breakdown taxes income as if the
// tax-free threshold is claimed
type ThresholdPolicy string

const (
	// ThresholdAlwaysClaimed assumes the threshold is claimed regardless of stream flags
	ThresholdAlwaysClaimed ThresholdPolicy = "always_claimed"
	// ThresholdPerStream claims the threshold only when some stream carries the flag
	ThresholdPerStream ThresholdPolicy = "per_stream"
)

// Valid reports whether the policy is known
func (p ThresholdPolicy) Valid() bool {
	return p == ThresholdAlwaysClaimed || p == ThresholdPerStream
}

// NetIncomeCalculator turns the income streams of a snapshot into an annual income statement
type NetIncomeCalculator struct {
	TaxCalc *TaxCalculator
	Policy  ThresholdPolicy
}

// NewNetIncomeCalculator creates a calculator with the 2024-25 tables and
// the always-claimed threshold policy
func NewNetIncomeCalculator() *NetIncomeCalculator {
	return &NetIncomeCalculator{
		TaxCalc: NewTaxCalculator2024(),
		Policy:  ThresholdAlwaysClaimed,
	}
}

// CalculateNetIncomeBreakdown uses the default calculator
func CalculateNetIncomeBreakdown(state *domain.AppState) domain.NetIncomeBreakdown {
	return NewNetIncomeCalculator().Calculate(state)
}

func (nc *NetIncomeCalculator) claimsThreshold(state *domain.AppState) bool {
	if nc.Policy == ThresholdPerStream {
		return state.ThresholdClaimant() != ""
	}
	return true
}

// Calculate produces the annual breakdown. Packaging, sacrifice and admin
// fees are annualized with each stream's own frequency.
func (nc *NetIncomeCalculator) Calculate(state *domain.AppState) domain.NetIncomeBreakdown {
	var (
		taxableGross = decimal.Zero
		taxFreeGross = decimal.Zero
		packaging    = decimal.Zero
		sacrifice    = decimal.Zero
		adminFees    = decimal.Zero
		superTotal   = decimal.Zero
		other        = decimal.Zero
	)

	for _, inc := range state.Incomes {
		gross := ToAnnual(inc.Amount, inc.RepeatCount, inc.Unit)
		sac := ToAnnual(inc.SalarySacrifice, inc.RepeatCount, inc.Unit)

		if inc.Type.Taxable() {
			taxableGross = taxableGross.Add(gross)
		} else {
			taxFreeGross = taxFreeGross.Add(gross)
		}
		packaging = packaging.Add(ToAnnual(inc.SalaryPackaging, inc.RepeatCount, inc.Unit))
		sacrifice = sacrifice.Add(sac)
		adminFees = adminFees.Add(ToAnnual(inc.AdminFee, inc.RepeatCount, inc.Unit))
		superTotal = superTotal.Add(gross.Mul(percent(inc.SuperRate)).Add(sac))
	}
	for _, d := range state.Deductions {
		other = other.Add(d.Amount)
	}

	taxable := floorZero(taxableGross.Sub(packaging).Sub(sacrifice).Sub(adminFees).Sub(other))
	settings := state.UserSettings

	baseTax := nc.TaxCalc.CalculateTax(taxable, settings.IsResident, nc.claimsThreshold(state))
	medicare := nc.TaxCalc.MedicareLevy(taxable, settings.IsResident)
	adjusted := nc.TaxCalc.AdjustedTaxableIncome(taxable, packaging)
	mls := nc.TaxCalc.MedicareLevySurcharge(taxable, adjusted, settings.IsResident, settings.HasPrivateHealth)
	hecs := nc.TaxCalc.IncomeContingentRepayment(adjusted, settings.HasHECSDebt)
	totalTax := baseTax.Add(medicare).Add(mls).Add(hecs)

	netSalary := taxableGross.Sub(totalTax).Sub(adminFees).Sub(sacrifice).Sub(packaging)
	bankTakeHome := netSalary.Add(taxFreeGross)

	return domain.NetIncomeBreakdown{
		TotalGrossCash:  taxableGross.Add(taxFreeGross),
		TaxableGross:    taxableGross,
		TotalPackaging:  packaging,
		TotalSacrifice:  sacrifice,
		TotalAdminFees:  adminFees,
		OtherDeductions: other,
		TaxableIncome:   taxable,
		AdjustedIncome:  adjusted,
		BaseTax:         baseTax,
		Medicare:        medicare,
		MLS:             mls,
		HECSEquivalent:  hecs,
		TotalTaxBill:    totalTax,
		NetSalary:       netSalary,
		TaxFreeIncome:   taxFreeGross,
		BankTakeHome:    bankTakeHome,
		NetCashPosition: bankTakeHome.Add(packaging),
		TotalSuper:      superTotal,
	}
}

// SurplusAnnual is the cash left each year after every budgeted expense, floored at zero
func SurplusAnnual(breakdown domain.NetIncomeBreakdown, state *domain.AppState) decimal.Decimal {
	return floorZero(breakdown.NetCashPosition.Sub(TotalAnnualExpenses(state)))
}
