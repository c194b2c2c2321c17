package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of household snapshot files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.AppState, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses a YAML or JSON snapshot, fills defaults and validates it
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.AppState, error) {
	var state domain.AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&state)

	if err := ip.ValidateState(&state); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}

	return &state, nil
}

// ApplyDefaults fills fields a hand-written snapshot usually leaves out and
// assigns IDs to items that have none
func (ip *InputParser) ApplyDefaults(state *domain.AppState) {
	for i := range state.Incomes {
		inc := &state.Incomes[i]
		if inc.ID == "" {
			inc.ID = uuid.NewString()
		}
		if inc.RepeatCount == 0 {
			inc.RepeatCount = 1
		}
		if inc.Type == "" {
			inc.Type = domain.IncomeSalary
		}
		if inc.TaxTreatment == "" {
			if inc.Type == domain.IncomeContractor {
				inc.TaxTreatment = domain.TreatmentContractorFlat
			} else {
				inc.TaxTreatment = domain.TreatmentThresholdNotClaimed
			}
		}
	}
	for i := range state.Expenses {
		if state.Expenses[i].ID == "" {
			state.Expenses[i].ID = uuid.NewString()
		}
		if state.Expenses[i].RepeatCount == 0 {
			state.Expenses[i].RepeatCount = 1
		}
	}
	for i := range state.Assets {
		if state.Assets[i].ID == "" {
			state.Assets[i].ID = uuid.NewString()
		}
	}
	for i := range state.Liabilities {
		if state.Liabilities[i].ID == "" {
			state.Liabilities[i].ID = uuid.NewString()
		}
		if state.Liabilities[i].Category == "" {
			state.Liabilities[i].Category = domain.LiabilityPersonal
		}
	}
	for i := range state.Deductions {
		if state.Deductions[i].ID == "" {
			state.Deductions[i].ID = uuid.NewString()
		}
	}
	if state.Mortgage.RepaymentFreq == "" {
		state.Mortgage.RepaymentFreq = domain.RepaymentMonthly
	}
	if state.Fire.Mode == "" {
		state.Fire.Mode = domain.FireModeSimple
	}
}

// ValidateState validates a snapshot. It returns the first problem found.
func (ip *InputParser) ValidateState(state *domain.AppState) error {
	if err := ip.validateIncomes(state.Incomes); err != nil {
		return fmt.Errorf("incomes validation failed: %w", err)
	}
	if err := ip.validateExpenses(state); err != nil {
		return fmt.Errorf("expenses validation failed: %w", err)
	}
	for i, d := range state.Deductions {
		if d.Amount.IsNegative() {
			return fmt.Errorf("deduction %d (%s): amount cannot be negative", i, d.Name)
		}
	}
	if err := ip.validateAssets(state.Assets); err != nil {
		return fmt.Errorf("assets validation failed: %w", err)
	}
	for i, l := range state.Liabilities {
		if l.Balance.IsNegative() {
			return fmt.Errorf("liability %d (%s): balance cannot be negative", i, l.Name)
		}
		if !l.Category.Valid() {
			return fmt.Errorf("liability %d (%s): unknown category %q", i, l.Name, l.Category)
		}
	}
	if !state.UserSettings.IsRenting {
		if err := ip.validateMortgage(&state.Mortgage); err != nil {
			return fmt.Errorf("mortgage validation failed: %w", err)
		}
	}
	if err := ip.validateFire(state); err != nil {
		return fmt.Errorf("fire settings validation failed: %w", err)
	}
	if err := ip.validateCategoryMap(state); err != nil {
		return fmt.Errorf("category map validation failed: %w", err)
	}
	return nil
}

func validatePeriodic(amount decimal.Decimal, repeat int, unit domain.FrequencyUnit) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if repeat < 1 {
		return fmt.Errorf("repeat count must be at least 1, got %d", repeat)
	}
	if !unit.Valid() {
		return fmt.Errorf("unknown frequency unit %q", unit)
	}
	return nil
}

func (ip *InputParser) validateIncomes(incomes []domain.IncomeStream) error {
	seen := map[string]bool{}
	claimants := 0
	for i, inc := range incomes {
		if inc.Name == "" {
			return fmt.Errorf("income %d: name is required", i)
		}
		if seen[inc.ID] {
			return fmt.Errorf("income %d (%s): duplicate id %q", i, inc.Name, inc.ID)
		}
		seen[inc.ID] = true
		if !inc.Type.Valid() {
			return fmt.Errorf("income %d (%s): unknown type %q", i, inc.Name, inc.Type)
		}
		if !inc.TaxTreatment.Valid() {
			return fmt.Errorf("income %d (%s): unknown tax treatment %q", i, inc.Name, inc.TaxTreatment)
		}
		if err := validatePeriodic(inc.Amount, inc.RepeatCount, inc.Unit); err != nil {
			return fmt.Errorf("income %d (%s): %w", i, inc.Name, err)
		}
		if inc.SalaryPackaging.IsNegative() || inc.SalarySacrifice.IsNegative() || inc.AdminFee.IsNegative() {
			return fmt.Errorf("income %d (%s): packaging, sacrifice and admin fee cannot be negative", i, inc.Name)
		}
		if inc.SuperRate.IsNegative() || inc.SuperRate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("income %d (%s): super rate must be between 0 and 100", i, inc.Name)
		}
		if inc.ClaimsThreshold() {
			claimants++
		}
	}
	if claimants > 1 {
		return fmt.Errorf("only one income stream can claim the tax-free threshold, found %d", claimants)
	}
	return nil
}

func (ip *InputParser) validateExpenses(state *domain.AppState) error {
	categories := map[string]bool{}
	for _, c := range state.ExpenseCategories {
		categories[c] = true
	}
	for i, e := range state.Expenses {
		if e.Name == "" {
			return fmt.Errorf("expense %d: name is required", i)
		}
		if err := validatePeriodic(e.Amount, e.RepeatCount, e.Unit); err != nil {
			return fmt.Errorf("expense %d (%s): %w", i, e.Name, err)
		}
		if len(categories) > 0 && !categories[e.Category] {
			return fmt.Errorf("expense %d (%s): category %q is not in the category list", i, e.Name, e.Category)
		}
	}
	return nil
}

func (ip *InputParser) validateAssets(assets []domain.AssetItem) error {
	seen := map[string]bool{}
	for i, a := range assets {
		if a.Name == "" {
			return fmt.Errorf("asset %d: name is required", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("asset %d (%s): duplicate id %q", i, a.Name, a.ID)
		}
		seen[a.ID] = true
		if a.Value.IsNegative() {
			return fmt.Errorf("asset %d (%s): value cannot be negative", i, a.Name)
		}
		if a.GrowthRate.LessThan(decimal.NewFromInt(-100)) {
			return fmt.Errorf("asset %d (%s): growth rate cannot be below -100%%", i, a.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateMortgage(m *domain.MortgageParams) error {
	if m.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if m.OffsetBalance.IsNegative() {
		return fmt.Errorf("offset balance cannot be negative")
	}
	if m.InterestRate.IsNegative() || m.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("interest rate must be between 0 and 100, got %s", m.InterestRate)
	}
	if m.LoanTermYears < 1 || m.LoanTermYears > 50 {
		return fmt.Errorf("loan term must be between 1 and 50 years, got %d", m.LoanTermYears)
	}
	if !m.RepaymentFreq.Valid() {
		return fmt.Errorf("unknown repayment frequency %q", m.RepaymentFreq)
	}
	if m.UserRepayment != nil && m.UserRepayment.IsNegative() {
		return fmt.Errorf("user repayment cannot be negative")
	}
	if m.PropertyValue.IsNegative() {
		return fmt.Errorf("property value cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateFire(state *domain.AppState) error {
	fire := state.Fire
	if !fire.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", fire.Mode)
	}
	if !fire.SWR.IsPositive() || fire.SWR.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("safe withdrawal rate must be above 0 and at most 100, got %s", fire.SWR)
	}
	if fire.RetirementBaseCost.IsNegative() {
		return fmt.Errorf("retirement base cost cannot be negative")
	}
	if fire.FireTargetOverride != nil && fire.FireTargetOverride.IsNegative() {
		return fmt.Errorf("fire target override cannot be negative")
	}
	if fire.SurplusSinkAssetID != "" && state.FindAsset(fire.SurplusSinkAssetID) < 0 {
		return fmt.Errorf("surplus sink asset %q not found", fire.SurplusSinkAssetID)
	}
	return nil
}

func (ip *InputParser) validateCategoryMap(state *domain.AppState) error {
	if len(state.Accounts) == 0 {
		return nil
	}
	accounts := map[string]bool{}
	for _, a := range state.Accounts {
		accounts[a.ID] = true
	}
	for category, account := range state.CategoryMap {
		if !accounts[account] {
			return fmt.Errorf("category %q maps to unknown account %q", category, account)
		}
	}
	return nil
}

// SaveToFile writes a snapshot as YAML
func (ip *InputParser) SaveToFile(state *domain.AppState, filename string) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
