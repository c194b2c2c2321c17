package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IncomeType classifies an income stream and drives its default tax treatment
type IncomeType string

const (
	IncomeSalary     IncomeType = "salary"
	IncomeContractor IncomeType = "abn"
	IncomeInvestment IncomeType = "investment"
	IncomeTaxFree    IncomeType = "tax-free"
	IncomeOther      IncomeType = "other"
)

// Valid reports whether the income type is known
func (t IncomeType) Valid() bool {
	switch t {
	case IncomeSalary, IncomeContractor, IncomeInvestment, IncomeTaxFree, IncomeOther:
		return true
	}
	return false
}

// Taxable reports whether income of this type counts towards taxable gross
func (t IncomeType) Taxable() bool {
	return t != IncomeTaxFree
}

// TaxTreatment records how a stream is treated for withholding
type TaxTreatment string

const (
	TreatmentThresholdClaimed    TaxTreatment = "tft"
	TreatmentThresholdNotClaimed TaxTreatment = "no-tft"
	TreatmentContractorFlat      TaxTreatment = "abn"
)

// Valid reports whether the treatment is known
func (t TaxTreatment) Valid() bool {
	switch t {
	case TreatmentThresholdClaimed, TreatmentThresholdNotClaimed, TreatmentContractorFlat:
		return true
	}
	return false
}

// DefaultSuperRate is the superannuation guarantee rate applied to new salary streams
var DefaultSuperRate = decimal.NewFromFloat(11.5)

// IncomeStream is one source of income. Packaging, sacrifice and admin fee are
// expressed in the same period as Amount.
type IncomeStream struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Type            IncomeType      `yaml:"type" json:"type"`
	Amount          decimal.Decimal `yaml:"amount" json:"amount"`
	RepeatCount     int             `yaml:"repeat_count" json:"repeat_count"`
	Unit            FrequencyUnit   `yaml:"unit" json:"unit"`
	TaxTreatment    TaxTreatment    `yaml:"tax_treatment" json:"tax_treatment"`
	SalaryPackaging decimal.Decimal `yaml:"salary_packaging" json:"salary_packaging"`
	SalarySacrifice decimal.Decimal `yaml:"salary_sacrifice" json:"salary_sacrifice"`
	AdminFee        decimal.Decimal `yaml:"admin_fee" json:"admin_fee"`
	SuperRate       decimal.Decimal `yaml:"super_rate" json:"super_rate"` // percent of gross
}

// ClaimsThreshold reports whether this stream holds the tax-free threshold
func (s IncomeStream) ClaimsThreshold() bool {
	return s.TaxTreatment == TreatmentThresholdClaimed
}

// Deduction is an annual pre-tax deduction not tied to a single income stream
type Deduction struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Category string          `yaml:"category,omitempty" json:"category,omitempty"`
}

// ExpenseItem is a recurring budget line
type ExpenseItem struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	RepeatCount    int             `yaml:"repeat_count" json:"repeat_count"`
	Unit           FrequencyUnit   `yaml:"unit" json:"unit"`
	Category       string          `yaml:"category" json:"category"`
	IsMortgageLink bool            `yaml:"is_mortgage_link" json:"is_mortgage_link"`
}

// AssetItem is an investable asset that compounds at GrowthRate percent a year
type AssetItem struct {
	ID         string          `yaml:"id" json:"id"`
	Name       string          `yaml:"name" json:"name"`
	Value      decimal.Decimal `yaml:"value" json:"value"`
	Category   string          `yaml:"category" json:"category"`
	GrowthRate decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
}

// LiabilityCategory classifies non-mortgage debt
type LiabilityCategory string

const (
	LiabilityPersonal   LiabilityCategory = "personal"
	LiabilityBusiness   LiabilityCategory = "business"
	LiabilityInvestment LiabilityCategory = "investment"
)

// Valid reports whether the category is known
func (c LiabilityCategory) Valid() bool {
	switch c {
	case LiabilityPersonal, LiabilityBusiness, LiabilityInvestment:
		return true
	}
	return false
}

// LiabilityItem is a non-mortgage debt
type LiabilityItem struct {
	ID       string            `yaml:"id" json:"id"`
	Name     string            `yaml:"name" json:"name"`
	Balance  decimal.Decimal   `yaml:"balance" json:"balance"`
	Category LiabilityCategory `yaml:"category" json:"category"`
}

// AccountBucket is a bank account that expense categories are paid from
type AccountBucket struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// SurplusAccountID is the account bucket that receives unallocated cash
const SurplusAccountID = "surplus"

// MortgageParams describes the home loan and the property securing it
type MortgageParams struct {
	Principal     decimal.Decimal    `yaml:"principal" json:"principal"`
	OffsetBalance decimal.Decimal    `yaml:"offset_balance" json:"offset_balance"`
	InterestRate  decimal.Decimal    `yaml:"interest_rate" json:"interest_rate"`
	LoanTermYears int                `yaml:"loan_term_years" json:"loan_term_years"`
	UserRepayment *decimal.Decimal   `yaml:"user_repayment,omitempty" json:"user_repayment,omitempty"` // per RepaymentFreq period; nil derives from linked expenses
	RepaymentFreq RepaymentFrequency `yaml:"repayment_freq" json:"repayment_freq"`
	PropertyValue decimal.Decimal    `yaml:"property_value" json:"property_value"`
	GrowthRate    decimal.Decimal    `yaml:"growth_rate" json:"growth_rate"`
}

// UserSettings holds the household flags that affect tax and housing
type UserSettings struct {
	Name             string `yaml:"name,omitempty" json:"name,omitempty"`
	IsResident       bool   `yaml:"is_resident" json:"is_resident"`
	HasPrivateHealth bool   `yaml:"has_private_health" json:"has_private_health"`
	HasHECSDebt      bool   `yaml:"has_hecs_debt" json:"has_hecs_debt"`
	IsRenting        bool   `yaml:"is_renting" json:"is_renting"`
}

// FireMode selects how the FIRE target and net worth basis are computed
type FireMode string

const (
	FireModeSimple   FireMode = "simple"
	FireModeRigorous FireMode = "rigorous"
)

// Valid reports whether the mode is known
func (m FireMode) Valid() bool {
	return m == FireModeSimple || m == FireModeRigorous
}

// FireSettings configures the financial independence projection
type FireSettings struct {
	Mode               FireMode         `yaml:"mode" json:"mode"`
	RetirementBaseCost decimal.Decimal  `yaml:"retirement_base_cost" json:"retirement_base_cost"`
	SWR                decimal.Decimal  `yaml:"swr" json:"swr"` // percent
	FireTargetOverride *decimal.Decimal `yaml:"fire_target_override,omitempty" json:"fire_target_override,omitempty"`
	// SurplusSinkAssetID names the asset that receives reinvested surplus.
	// Empty means the first asset in the list.
	SurplusSinkAssetID string `yaml:"surplus_sink_asset_id,omitempty" json:"surplus_sink_asset_id,omitempty"`
}

// AppState is the full snapshot the engine works from. Engine functions treat
// it as read-only; mutate a DeepCopy when exploring what-if scenarios.
type AppState struct {
	UserSettings      UserSettings      `yaml:"user_settings" json:"user_settings"`
	Incomes           []IncomeStream    `yaml:"incomes" json:"incomes"`
	Deductions        []Deduction       `yaml:"deductions,omitempty" json:"deductions,omitempty"`
	Expenses          []ExpenseItem     `yaml:"expenses" json:"expenses"`
	ExpenseCategories []string          `yaml:"expense_categories,omitempty" json:"expense_categories,omitempty"`
	Accounts          []AccountBucket   `yaml:"accounts,omitempty" json:"accounts,omitempty"`
	CategoryMap       map[string]string `yaml:"category_map,omitempty" json:"category_map,omitempty"`
	Assets            []AssetItem       `yaml:"assets" json:"assets"`
	AssetCategories   []string          `yaml:"asset_categories,omitempty" json:"asset_categories,omitempty"`
	Liabilities       []LiabilityItem   `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`
	Mortgage          MortgageParams    `yaml:"mortgage" json:"mortgage"`
	Fire              FireSettings      `yaml:"fire" json:"fire"`
}

// DeepCopy returns a copy that shares no slices, maps or pointers with s
func (s *AppState) DeepCopy() *AppState {
	if s == nil {
		return nil
	}
	c := *s
	c.Incomes = append([]IncomeStream(nil), s.Incomes...)
	c.Deductions = append([]Deduction(nil), s.Deductions...)
	c.Expenses = append([]ExpenseItem(nil), s.Expenses...)
	c.ExpenseCategories = append([]string(nil), s.ExpenseCategories...)
	c.Accounts = append([]AccountBucket(nil), s.Accounts...)
	c.Assets = append([]AssetItem(nil), s.Assets...)
	c.AssetCategories = append([]string(nil), s.AssetCategories...)
	c.Liabilities = append([]LiabilityItem(nil), s.Liabilities...)
	if s.CategoryMap != nil {
		c.CategoryMap = make(map[string]string, len(s.CategoryMap))
		for k, v := range s.CategoryMap {
			c.CategoryMap[k] = v
		}
	}
	if s.Mortgage.UserRepayment != nil {
		v := *s.Mortgage.UserRepayment
		c.Mortgage.UserRepayment = &v
	}
	if s.Fire.FireTargetOverride != nil {
		v := *s.Fire.FireTargetOverride
		c.Fire.FireTargetOverride = &v
	}
	return &c
}

// FindIncome returns the index of the income stream with the given ID, or -1
func (s *AppState) FindIncome(id string) int {
	for i := range s.Incomes {
		if s.Incomes[i].ID == id {
			return i
		}
	}
	return -1
}

// FindAsset returns the index of the asset with the given ID, or -1
func (s *AppState) FindAsset(id string) int {
	for i := range s.Assets {
		if s.Assets[i].ID == id {
			return i
		}
	}
	return -1
}

// SurplusSinkIndex resolves the asset that receives reinvested surplus.
// It returns -1 when there are no assets or the configured ID is unknown.
func (s *AppState) SurplusSinkIndex() int {
	if len(s.Assets) == 0 {
		return -1
	}
	if s.Fire.SurplusSinkAssetID == "" {
		return 0
	}
	return s.FindAsset(s.Fire.SurplusSinkAssetID)
}

// ThresholdClaimant returns the ID of the stream claiming the tax-free
// threshold, or "" when none does.
func (s *AppState) ThresholdClaimant() string {
	for _, inc := range s.Incomes {
		if inc.ClaimsThreshold() {
			return inc.ID
		}
	}
	return ""
}

// ClaimTaxFreeThreshold gives the threshold to one stream and takes it from
// every other stream in the same call.
func (s *AppState) ClaimTaxFreeThreshold(incomeID string) error {
	idx := s.FindIncome(incomeID)
	if idx < 0 {
		return fmt.Errorf("income stream %q not found", incomeID)
	}
	for i := range s.Incomes {
		if i == idx {
			s.Incomes[i].TaxTreatment = TreatmentThresholdClaimed
			continue
		}
		if s.Incomes[i].TaxTreatment == TreatmentThresholdClaimed {
			s.Incomes[i].TaxTreatment = TreatmentThresholdNotClaimed
		}
	}
	return nil
}

// ReleaseTaxFreeThreshold sets the stream back to not claiming the threshold
func (s *AppState) ReleaseTaxFreeThreshold(incomeID string) error {
	idx := s.FindIncome(incomeID)
	if idx < 0 {
		return fmt.Errorf("income stream %q not found", incomeID)
	}
	if s.Incomes[idx].TaxTreatment == TreatmentThresholdClaimed {
		s.Incomes[idx].TaxTreatment = TreatmentThresholdNotClaimed
	}
	return nil
}

// SetIncomeType changes a stream's type and resets its treatment and super
// rate to the defaults for that type.
func (s *AppState) SetIncomeType(incomeID string, t IncomeType) error {
	if !t.Valid() {
		return fmt.Errorf("unknown income type %q", t)
	}
	idx := s.FindIncome(incomeID)
	if idx < 0 {
		return fmt.Errorf("income stream %q not found", incomeID)
	}
	inc := &s.Incomes[idx]
	inc.Type = t
	switch t {
	case IncomeContractor:
		inc.TaxTreatment = TreatmentContractorFlat
		inc.SuperRate = decimal.Zero
	case IncomeSalary:
		inc.TaxTreatment = TreatmentThresholdNotClaimed
		inc.SuperRate = DefaultSuperRate
	default:
		inc.TaxTreatment = TreatmentThresholdNotClaimed
		inc.SuperRate = decimal.Zero
	}
	return nil
}

// SetRepaymentFrequency switches the mortgage repayment period. A user
// repayment override is rescaled so its annual total is unchanged.
func (s *AppState) SetRepaymentFrequency(freq RepaymentFrequency) error {
	if !freq.Valid() {
		return fmt.Errorf("unknown repayment frequency %q", freq)
	}
	if s.Mortgage.UserRepayment != nil {
		annual := s.Mortgage.UserRepayment.Mul(decimal.NewFromInt(s.Mortgage.RepaymentFreq.PeriodsPerYear()))
		v := annual.Div(decimal.NewFromInt(freq.PeriodsPerYear())).Round(2)
		s.Mortgage.UserRepayment = &v
	}
	s.Mortgage.RepaymentFreq = freq
	return nil
}

// NewIncomeStream returns a salary stream with the usual defaults
func NewIncomeStream(id, name string) IncomeStream {
	return IncomeStream{
		ID:              id,
		Name:            name,
		Type:            IncomeSalary,
		Amount:          decimal.Zero,
		RepeatCount:     1,
		Unit:            FrequencyYear,
		TaxTreatment:    TreatmentThresholdNotClaimed,
		SalaryPackaging: decimal.Zero,
		SalarySacrifice: decimal.Zero,
		AdminFee:        decimal.Zero,
		SuperRate:       DefaultSuperRate,
	}
}

// NewExpense returns a weekly expense in the given category
func NewExpense(id, name, category string) ExpenseItem {
	return ExpenseItem{
		ID:          id,
		Name:        name,
		Amount:      decimal.Zero,
		RepeatCount: 1,
		Unit:        FrequencyWeek,
		Category:    category,
	}
}

// NewAsset returns an asset growing at 7% a year
func NewAsset(id, name, category string) AssetItem {
	return AssetItem{
		ID:         id,
		Name:       name,
		Value:      decimal.Zero,
		Category:   category,
		GrowthRate: decimal.NewFromInt(7),
	}
}
