package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax uses the 2024-25 resident and non-resident schedules for
//    every projection year. No indexation.
//
// 2. A resident who does not claim the tax-free threshold is taxed at a
//    flat 30%. This is a withholding approximation, not bracket math.
//
// 3. Non-residents below the 135,000 bracket are taxed at a flat 30%.
//
// 4. Medicare levy, the surcharge and the income-contingent loan repayment
//    are separate from CalculateTax and are added by the caller.

// TaxBracket is one marginal band: income above Threshold is taxed at Rate on
// top of Base, the cumulative tax owed at Threshold.
type TaxBracket struct {
	Threshold decimal.Decimal
	Base      decimal.Decimal
	Rate      decimal.Decimal
}

// LevyTier applies Rate once income exceeds Threshold
type LevyTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// TaxCalculator holds the tax tables. Bracket and tier slices are ordered
// from the highest threshold down.
type TaxCalculator struct {
	ResidentBrackets    []TaxBracket
	NonResidentBrackets []TaxBracket
	NoThresholdRate     decimal.Decimal
	NonResidentFlatRate decimal.Decimal

	MedicareRate      decimal.Decimal
	MedicareThreshold decimal.Decimal

	// FringeBenefitGrossUp converts packaged amounts into reportable fringe benefits
	FringeBenefitGrossUp decimal.Decimal
	MLSTiers             []LevyTier
	LoanRepaymentTiers   []LevyTier
}

// NewTaxCalculator2024 creates a calculator for the 2024-25 income year
func NewTaxCalculator2024() *TaxCalculator {
	return &TaxCalculator{
		ResidentBrackets: []TaxBracket{
			{decimal.NewFromInt(190000), decimal.NewFromInt(51638), decimal.NewFromFloat(0.45)},
			{decimal.NewFromInt(135000), decimal.NewFromInt(31288), decimal.NewFromFloat(0.37)},
			{decimal.NewFromInt(45000), decimal.NewFromInt(4288), decimal.NewFromFloat(0.30)},
			{decimal.NewFromInt(18200), decimal.Zero, decimal.NewFromFloat(0.16)},
		},
		NonResidentBrackets: []TaxBracket{
			{decimal.NewFromInt(190000), decimal.NewFromInt(60850), decimal.NewFromFloat(0.45)},
			{decimal.NewFromInt(135000), decimal.NewFromInt(40500), decimal.NewFromFloat(0.37)},
		},
		NoThresholdRate:      decimal.NewFromFloat(0.30),
		NonResidentFlatRate:  decimal.NewFromFloat(0.30),
		MedicareRate:         decimal.NewFromFloat(0.02),
		MedicareThreshold:    decimal.NewFromInt(26000),
		FringeBenefitGrossUp: decimal.RequireFromString("1.8868"),
		MLSTiers: []LevyTier{
			{decimal.NewFromInt(151000), decimal.NewFromFloat(0.015)},
			{decimal.NewFromInt(113000), decimal.NewFromFloat(0.0125)},
			{decimal.NewFromInt(97000), decimal.NewFromFloat(0.01)},
		},
		LoanRepaymentTiers: []LevyTier{
			{decimal.NewFromInt(151201), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(100000), decimal.NewFromFloat(0.06)},
			{decimal.NewFromInt(54435), decimal.NewFromFloat(0.01)},
		},
	}
}

var defaultTaxCalculator = NewTaxCalculator2024()

// CalculateTax returns income tax on taxableIncome using the 2024-25 tables
func CalculateTax(taxableIncome decimal.Decimal, isResident, claimsThreshold bool) decimal.Decimal {
	return defaultTaxCalculator.CalculateTax(taxableIncome, isResident, claimsThreshold)
}

// CalculateTax returns income tax on taxableIncome
func (tc *TaxCalculator) CalculateTax(taxableIncome decimal.Decimal, isResident, claimsThreshold bool) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}
	if isResident {
		if !claimsThreshold {
			return taxableIncome.Mul(tc.NoThresholdRate)
		}
		if tax, ok := applyBrackets(tc.ResidentBrackets, taxableIncome); ok {
			return tax
		}
		return decimal.Zero
	}
	if tax, ok := applyBrackets(tc.NonResidentBrackets, taxableIncome); ok {
		return tax
	}
	return taxableIncome.Mul(tc.NonResidentFlatRate)
}

func applyBrackets(brackets []TaxBracket, income decimal.Decimal) (decimal.Decimal, bool) {
	for _, b := range brackets {
		if income.GreaterThan(b.Threshold) {
			return b.Base.Add(income.Sub(b.Threshold).Mul(b.Rate)), true
		}
	}
	return decimal.Zero, false
}

// tierRate returns the rate of the highest tier income exceeds, or zero
func tierRate(tiers []LevyTier, income decimal.Decimal) decimal.Decimal {
	for _, t := range tiers {
		if income.GreaterThan(t.Threshold) {
			return t.Rate
		}
	}
	return decimal.Zero
}

// MedicareLevy is 2% of taxable income for residents above the low-income threshold
func (tc *TaxCalculator) MedicareLevy(taxableIncome decimal.Decimal, isResident bool) decimal.Decimal {
	if !isResident || !taxableIncome.GreaterThan(tc.MedicareThreshold) {
		return decimal.Zero
	}
	return taxableIncome.Mul(tc.MedicareRate)
}

// AdjustedTaxableIncome adds grossed-up packaging back onto taxable income
func (tc *TaxCalculator) AdjustedTaxableIncome(taxableIncome, packaging decimal.Decimal) decimal.Decimal {
	return taxableIncome.Add(packaging.Mul(tc.FringeBenefitGrossUp))
}

// MedicareLevySurcharge applies to residents without private cover. The rate
// is chosen by adjusted income but charged on taxable income.
func (tc *TaxCalculator) MedicareLevySurcharge(taxableIncome, adjustedIncome decimal.Decimal, isResident, hasPrivateHealth bool) decimal.Decimal {
	if !isResident || hasPrivateHealth {
		return decimal.Zero
	}
	return taxableIncome.Mul(tierRate(tc.MLSTiers, adjustedIncome))
}

// IncomeContingentRepayment is a single flat rate on the whole adjusted
// income, picked by the highest threshold exceeded. It is not marginal.
func (tc *TaxCalculator) IncomeContingentRepayment(adjustedIncome decimal.Decimal, hasDebt bool) decimal.Decimal {
	if !hasDebt {
		return decimal.Zero
	}
	return adjustedIncome.Mul(tierRate(tc.LoanRepaymentTiers, adjustedIncome))
}

// MedicareLevy uses the 2024-25 tables
func MedicareLevy(taxableIncome decimal.Decimal, isResident bool) decimal.Decimal {
	return defaultTaxCalculator.MedicareLevy(taxableIncome, isResident)
}

// MedicareLevySurcharge uses the 2024-25 tables
func MedicareLevySurcharge(taxableIncome, adjustedIncome decimal.Decimal, isResident, hasPrivateHealth bool) decimal.Decimal {
	return defaultTaxCalculator.MedicareLevySurcharge(taxableIncome, adjustedIncome, isResident, hasPrivateHealth)
}

// IncomeContingentRepayment uses the 2024-25 tables
func IncomeContingentRepayment(adjustedIncome decimal.Decimal, hasDebt bool) decimal.Decimal {
	return defaultTaxCalculator.IncomeContingentRepayment(adjustedIncome, hasDebt)
}
