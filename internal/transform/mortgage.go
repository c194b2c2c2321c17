package transform

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SetRepayment overrides the mortgage repayment per repayment period.
type SetRepayment struct {
	Amount decimal.Decimal
}

func (t *SetRepayment) Name() string { return "set_repayment" }

func (t *SetRepayment) Description() string {
	return fmt.Sprintf("Repay $%s per period", t.Amount.StringFixed(2))
}

func (t *SetRepayment) Validate(base *domain.AppState) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", t.Amount), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetRepayment) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	amount := t.Amount
	modified.Mortgage.UserRepayment = &amount
	return modified, nil
}

// ExtraRepayment adds a fixed amount per period on top of the repayment
// currently being made, whether that is an override or budget-derived.
type ExtraRepayment struct {
	Amount decimal.Decimal
}

func (t *ExtraRepayment) Name() string { return "extra_repayment" }

func (t *ExtraRepayment) Description() string {
	return fmt.Sprintf("Repay an extra $%s per period", t.Amount.StringFixed(2))
}

func (t *ExtraRepayment) Validate(base *domain.AppState) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	current := calculation.ActualRepayment(base)
	if current.Add(t.Amount).IsNegative() {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("extra %s would make the repayment negative", t.Amount), nil)
	}
	return nil
}

func (t *ExtraRepayment) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	amount := calculation.ActualRepayment(base).Add(t.Amount).Round(2)
	modified.Mortgage.UserRepayment = &amount
	return modified, nil
}

// SetOffset sets the offset account balance.
type SetOffset struct {
	Balance decimal.Decimal
}

func (t *SetOffset) Name() string { return "set_offset" }

func (t *SetOffset) Description() string {
	return fmt.Sprintf("Set offset balance to $%s", t.Balance.StringFixed(2))
}

func (t *SetOffset) Validate(base *domain.AppState) error {
	if t.Balance.IsNegative() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("balance must be non-negative, got %s", t.Balance), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetOffset) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Mortgage.OffsetBalance = t.Balance
	return modified, nil
}

// SetInterestRate changes the mortgage interest rate (percent).
type SetInterestRate struct {
	Rate decimal.Decimal
}

func (t *SetInterestRate) Name() string { return "set_interest_rate" }

func (t *SetInterestRate) Description() string {
	return fmt.Sprintf("Set mortgage interest rate to %s%%", t.Rate.StringFixed(2))
}

func (t *SetInterestRate) Validate(base *domain.AppState) error {
	if t.Rate.IsNegative() || t.Rate.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("rate must be between 0 and 100, got %s", t.Rate), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetInterestRate) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Mortgage.InterestRate = t.Rate
	return modified, nil
}

// SetRenting switches between renting and owning. Renting drops the
// mortgage and property from every projection.
type SetRenting struct {
	Renting bool
}

func (t *SetRenting) Name() string { return "set_renting" }

func (t *SetRenting) Description() string {
	if t.Renting {
		return "Switch to renting"
	}
	return "Switch to owning"
}

func (t *SetRenting) Validate(base *domain.AppState) error {
	return requireBase(t.Name(), base)
}

func (t *SetRenting) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.UserSettings.IsRenting = t.Renting
	return modified, nil
}
