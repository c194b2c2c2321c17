package calculation

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func salaryState(amount string, unit domain.FrequencyUnit) *domain.AppState {
	inc := domain.NewIncomeStream("s", "Salary")
	inc.Amount = d(amount)
	inc.Unit = unit
	inc.SuperRate = decimal.Zero
	return &domain.AppState{
		UserSettings: domain.UserSettings{IsResident: true, HasPrivateHealth: true},
		Incomes:      []domain.IncomeStream{inc},
	}
}

func TestNetIncomeBreakdown_SingleSalary(t *testing.T) {
	state := salaryState("100000", domain.FrequencyYear)
	state.Incomes[0].TaxTreatment = domain.TreatmentThresholdClaimed

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "100000", b.TaxableIncome, "taxable")
	assertDecimal(t, "20788", b.BaseTax, "base tax")
	assertDecimal(t, "2000", b.Medicare, "medicare")
	assertDecimal(t, "0", b.MLS, "mls")
	assertDecimal(t, "0", b.HECSEquivalent, "hecs")
	assertDecimal(t, "22788", b.TotalTaxBill, "total tax")
	assertDecimal(t, "77212", b.NetSalary, "net salary")
	assertDecimal(t, "77212", b.BankTakeHome, "take home")
	assertDecimal(t, "77212", b.NetCashPosition, "net cash")
	assertDecimal(t, "100000", b.TotalGrossCash, "gross")
}

func TestNetIncomeBreakdown_DefaultHousehold(t *testing.T) {
	b := CalculateNetIncomeBreakdown(domain.DefaultState())

	assertDecimal(t, "108681.04", b.TotalGrossCash, "gross")
	assertDecimal(t, "67081.04", b.TaxableGross, "taxable gross")
	assertDecimal(t, "12631.84", b.TotalPackaging, "packaging")
	assertDecimal(t, "211.38", b.TotalAdminFees, "admin")
	assertDecimal(t, "54237.82", b.TaxableIncome, "taxable")
	assertDecimal(t, "7059.346", b.BaseTax, "base tax")
	assertDecimal(t, "1084.7564", b.Medicare, "medicare")
	assertDecimal(t, "8144.1024", b.TotalTaxBill, "total tax")
	assertDecimal(t, "46093.7176", b.NetSalary, "net salary")
	assertDecimal(t, "41600", b.TaxFreeIncome, "tax free")
	assertDecimal(t, "87693.7176", b.BankTakeHome, "take home")
	assertDecimal(t, "100325.5576", b.NetCashPosition, "net cash")
	assertDecimal(t, "7714.3196", b.TotalSuper, "super")
}

func TestNetIncomeBreakdown_PerStreamAnnualization(t *testing.T) {
	// packaging, sacrifice and admin are in the stream's own period
	state := salaryState("4000", domain.FrequencyMonth)
	state.Incomes[0].SalaryPackaging = d("500")
	state.Incomes[0].SalarySacrifice = d("100")
	state.Incomes[0].AdminFee = d("10")
	state.Incomes[0].SuperRate = d("10")

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "6000", b.TotalPackaging, "packaging")
	assertDecimal(t, "1200", b.TotalSacrifice, "sacrifice")
	assertDecimal(t, "120", b.TotalAdminFees, "admin")
	assertDecimal(t, "40680", b.TaxableIncome, "taxable")
	assertDecimal(t, "6000", b.TotalSuper, "super is 10% of gross plus sacrifice")
}

func TestNetIncomeBreakdown_FloorsTaxableIncome(t *testing.T) {
	state := salaryState("10000", domain.FrequencyYear)
	state.Deductions = []domain.Deduction{{ID: "d1", Name: "Work expenses", Amount: d("25000")}}

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "0", b.TaxableIncome, "taxable")
	assertDecimal(t, "0", b.TotalTaxBill, "tax")
	assertDecimal(t, "25000", b.OtherDeductions, "deductions")
}

func TestNetIncomeBreakdown_Levies(t *testing.T) {
	state := salaryState("100000", domain.FrequencyYear)
	state.UserSettings.HasPrivateHealth = false
	state.UserSettings.HasHECSDebt = true

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "1000", b.MLS, "mls at 1%")
	assertDecimal(t, "1000", b.HECSEquivalent, "loan repayment at 1%")
	assertDecimal(t, "24788", b.TotalTaxBill, "total")
}

func TestNetIncomeBreakdown_PackagingRaisesAdjustedIncome(t *testing.T) {
	state := salaryState("110000", domain.FrequencyYear)
	state.UserSettings.HasHECSDebt = true
	state.Incomes[0].SalaryPackaging = d("10000")

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "100000", b.TaxableIncome, "taxable")
	assertDecimal(t, "118868", b.AdjustedIncome, "adjusted")
	assertDecimal(t, "7132.08", b.HECSEquivalent, "6% of adjusted income")
}

func TestNetIncomeBreakdown_TaxFreeIncome(t *testing.T) {
	state := salaryState("50000", domain.FrequencyYear)
	side := domain.NewIncomeStream("t", "Side")
	side.Type = domain.IncomeTaxFree
	side.Amount = d("100")
	side.Unit = domain.FrequencyWeek
	state.Incomes = append(state.Incomes, side)

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "50000", b.TaxableIncome, "taxable")
	assertDecimal(t, "5200", b.TaxFreeIncome, "tax free")
	assertDecimal(t, b.NetSalary.Add(d("5200")).String(), b.BankTakeHome, "take home")
}

func TestNetIncomeBreakdown_ThresholdPolicy(t *testing.T) {
	state := salaryState("50000", domain.FrequencyYear)
	state.Incomes[0].TaxTreatment = domain.TreatmentThresholdNotClaimed

	always := NewNetIncomeCalculator()
	perStream := NewNetIncomeCalculator()
	perStream.Policy = ThresholdPerStream

	assertDecimal(t, "5788", always.Calculate(state).BaseTax, "always claimed")
	assertDecimal(t, "15000", perStream.Calculate(state).BaseTax, "per stream, unclaimed")

	state.Incomes[0].TaxTreatment = domain.TreatmentThresholdClaimed
	assertDecimal(t, "5788", perStream.Calculate(state).BaseTax, "per stream, claimed")

	assert.True(t, ThresholdPerStream.Valid())
	assert.False(t, ThresholdPolicy("sometimes").Valid())
}

func TestNetIncomeBreakdown_NonResident(t *testing.T) {
	state := salaryState("100000", domain.FrequencyYear)
	state.UserSettings.IsResident = false
	state.UserSettings.HasPrivateHealth = false

	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "30000", b.BaseTax, "flat 30%")
	assertDecimal(t, "0", b.Medicare, "no medicare")
	assertDecimal(t, "0", b.MLS, "no surcharge")
}

func TestSurplusAnnual(t *testing.T) {
	state := salaryState("100000", domain.FrequencyYear)
	state.Expenses = []domain.ExpenseItem{{Name: "rent", Amount: d("1000"), RepeatCount: 1, Unit: domain.FrequencyWeek}}
	b := CalculateNetIncomeBreakdown(state)

	assertDecimal(t, "25212", SurplusAnnual(b, state), "surplus")

	state.Expenses[0].Amount = d("5000")
	assertDecimal(t, "0", SurplusAnnual(b, state), "floored")
}
