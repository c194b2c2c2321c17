package transform

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ScaleExpenses multiplies expense amounts by Factor, optionally limited to
// one category. Mortgage-linked expenses are left alone unless
// IncludeMortgage is set, so cutting spending does not also cut repayments.
type ScaleExpenses struct {
	Factor          decimal.Decimal
	Category        string
	IncludeMortgage bool
}

func (t *ScaleExpenses) Name() string { return "scale_expenses" }

func (t *ScaleExpenses) Description() string {
	target := "expenses"
	if t.Category != "" {
		target = t.Category + " expenses"
	}
	return fmt.Sprintf("Scale %s by %s", target, t.Factor.String())
}

func (t *ScaleExpenses) Validate(base *domain.AppState) error {
	if t.Factor.IsNegative() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", t.Factor), nil)
	}
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Category == "" {
		return nil
	}
	for _, e := range base.Expenses {
		if e.Category == t.Category {
			return nil
		}
	}
	return NewTransformError(t.Name(), "validate", fmt.Sprintf("no expenses in category %s", t.Category), nil)
}

func (t *ScaleExpenses) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	for i := range modified.Expenses {
		e := &modified.Expenses[i]
		if e.IsMortgageLink && !t.IncludeMortgage {
			continue
		}
		if t.Category != "" && e.Category != t.Category {
			continue
		}
		e.Amount = e.Amount.Mul(t.Factor).Round(2)
	}
	return modified, nil
}
