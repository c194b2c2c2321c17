package domain

import (
	"github.com/shopspring/decimal"
)

// NetIncomeBreakdown is the annual income statement for a household.
// Every field is an annual amount.
type NetIncomeBreakdown struct {
	TotalGrossCash  decimal.Decimal `json:"totalGrossCash" yaml:"total_gross_cash"`
	TaxableGross    decimal.Decimal `json:"taxableGross" yaml:"taxable_gross"`
	TotalPackaging  decimal.Decimal `json:"totalPackaging" yaml:"total_packaging"`
	TotalSacrifice  decimal.Decimal `json:"totalSacrifice" yaml:"total_sacrifice"`
	TotalAdminFees  decimal.Decimal `json:"totalAdminFees" yaml:"total_admin_fees"`
	OtherDeductions decimal.Decimal `json:"otherDeductions" yaml:"other_deductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome" yaml:"taxable_income"`
	AdjustedIncome  decimal.Decimal `json:"adjustedTaxableIncome" yaml:"adjusted_taxable_income"`
	BaseTax         decimal.Decimal `json:"baseTax" yaml:"base_tax"`
	Medicare        decimal.Decimal `json:"medicare" yaml:"medicare"`
	MLS             decimal.Decimal `json:"mls" yaml:"mls"`
	HECSEquivalent  decimal.Decimal `json:"hecsEquivalent" yaml:"hecs_equivalent"`
	TotalTaxBill    decimal.Decimal `json:"totalTaxBill" yaml:"total_tax_bill"`
	NetSalary       decimal.Decimal `json:"netSalary" yaml:"net_salary"`
	TaxFreeIncome   decimal.Decimal `json:"taxFreeIncome" yaml:"tax_free_income"`
	BankTakeHome    decimal.Decimal `json:"bankTakeHome" yaml:"bank_take_home"`
	NetCashPosition decimal.Decimal `json:"netCashPosition" yaml:"net_cash_position"`
	TotalSuper      decimal.Decimal `json:"totalSuper" yaml:"total_super"`
}

// MortgageYear is one annual sample of the amortization schedule
type MortgageYear struct {
	Year            int             `json:"year" yaml:"year"`
	BalanceStandard decimal.Decimal `json:"balanceStandard" yaml:"balance_standard"`
	BalanceActual   decimal.Decimal `json:"balanceActual" yaml:"balance_actual"`
	Property        decimal.Decimal `json:"property" yaml:"property"`
	Equity          decimal.Decimal `json:"equity" yaml:"equity"`
	Redraw          decimal.Decimal `json:"redraw" yaml:"redraw"`
}

// MortgageSimulation compares the minimum repayment schedule with the
// repayment actually being made. Repayments are per RepaymentFreq period.
type MortgageSimulation struct {
	Data                []MortgageYear     `json:"data" yaml:"data"`
	RepaymentFreq       RepaymentFrequency `json:"repaymentFreq" yaml:"repayment_freq"`
	MinRepayment        decimal.Decimal    `json:"minRepayment" yaml:"min_repayment"`
	ActualRepayment     decimal.Decimal    `json:"actualRepayment" yaml:"actual_repayment"`
	PayoffActual        int                `json:"payoffActual" yaml:"payoff_actual"`
	PayoffStandard      int                `json:"payoffStandard" yaml:"payoff_standard"`
	FirstPeriodInterest decimal.Decimal    `json:"firstPeriodInterest" yaml:"first_period_interest"`
	BelowInterest       bool               `json:"belowInterest" yaml:"below_interest"`
}

// RepaymentCapacity describes how much the budget can put towards the loan each period
type RepaymentCapacity struct {
	BudgetRepayment    decimal.Decimal `json:"budgetRepayment" yaml:"budget_repayment"`
	MaxCapacity        decimal.Decimal `json:"maxCapacity" yaml:"max_capacity"`
	MinRepayment       decimal.Decimal `json:"minRepayment" yaml:"min_repayment"`
	BudgetBelowMinimum bool            `json:"budgetBelowMinimum" yaml:"budget_below_minimum"`
}

// NetWorthYear is one annual sample of the net worth projection
type NetWorthYear struct {
	Year        int             `json:"year" yaml:"year"`
	NetWorth    decimal.Decimal `json:"netWorth" yaml:"net_worth"`
	FireTarget  decimal.Decimal `json:"fireTarget" yaml:"fire_target"`
	Assets      decimal.Decimal `json:"assets" yaml:"assets"`
	Liabilities decimal.Decimal `json:"liabilities" yaml:"liabilities"`
	Mortgage    decimal.Decimal `json:"mortgage" yaml:"mortgage"`
	Property    decimal.Decimal `json:"property" yaml:"property"`
}

// NetWorthSimulation is the 30 year projection against the FIRE target
type NetWorthSimulation struct {
	Data       []NetWorthYear  `json:"data" yaml:"data"`
	FireTarget decimal.Decimal `json:"fireTarget" yaml:"fire_target"`
	Velocity   decimal.Decimal `json:"velocity" yaml:"velocity"`
	FireYear   *int            `json:"fireYear,omitempty" yaml:"fire_year,omitempty"`
}

// Position is today's balance sheet
type Position struct {
	LiquidAssets decimal.Decimal `json:"liquidAssets" yaml:"liquid_assets"`
	Property     decimal.Decimal `json:"property" yaml:"property"`
	Mortgage     decimal.Decimal `json:"mortgage" yaml:"mortgage"`
	Liabilities  decimal.Decimal `json:"liabilities" yaml:"liabilities"`
	NetWorth     decimal.Decimal `json:"netWorth" yaml:"net_worth"`
}

// CategoryTotal is the spend in one expense category
type CategoryTotal struct {
	Category  string          `json:"category" yaml:"category"`
	Annual    decimal.Decimal `json:"annual" yaml:"annual"`
	Display   decimal.Decimal `json:"display" yaml:"display"`
	AccountID string          `json:"accountId,omitempty" yaml:"account_id,omitempty"`
}

// AccountTotal is the amount to route to one account bucket
type AccountTotal struct {
	AccountID  string          `json:"accountId" yaml:"account_id"`
	Name       string          `json:"name" yaml:"name"`
	Annual     decimal.Decimal `json:"annual" yaml:"annual"`
	Display    decimal.Decimal `json:"display" yaml:"display"`
	Categories []string        `json:"categories" yaml:"categories"`
}

// CashFlow allocates spending to categories and accounts
type CashFlow struct {
	DisplayUnit        FrequencyUnit   `json:"displayUnit" yaml:"display_unit"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses" yaml:"total_expenses"`
	Surplus            decimal.Decimal `json:"surplus" yaml:"surplus"`
	SurplusDisplay     decimal.Decimal `json:"surplusDisplay" yaml:"surplus_display"`
	Categories         []CategoryTotal `json:"categories" yaml:"categories"`
	Accounts           []AccountTotal  `json:"accounts" yaml:"accounts"`
	UnmappedCategories []string        `json:"unmappedCategories,omitempty" yaml:"unmapped_categories,omitempty"`
}

// Report bundles every engine output for one snapshot
type Report struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	Breakdown NetIncomeBreakdown  `json:"breakdown" yaml:"breakdown"`
	CashFlow  CashFlow            `json:"cashFlow" yaml:"cash_flow"`
	Surplus   decimal.Decimal     `json:"surplus" yaml:"surplus"`
	Mortgage  *MortgageSimulation `json:"mortgage,omitempty" yaml:"mortgage,omitempty"`
	Capacity  *RepaymentCapacity  `json:"repaymentCapacity,omitempty" yaml:"repayment_capacity,omitempty"`
	NetWorth  NetWorthSimulation  `json:"netWorth" yaml:"net_worth"`
	Position  Position            `json:"position" yaml:"position"`
}
