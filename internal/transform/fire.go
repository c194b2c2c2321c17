package transform

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// SetAssetGrowth sets the growth rate of one asset, or of every asset when
// AssetID is empty.
type SetAssetGrowth struct {
	AssetID string
	Rate    decimal.Decimal
}

func (t *SetAssetGrowth) Name() string { return "set_asset_growth" }

func (t *SetAssetGrowth) Description() string {
	target := "all assets"
	if t.AssetID != "" {
		target = "asset " + t.AssetID
	}
	return fmt.Sprintf("Set growth of %s to %s%%", target, t.Rate.StringFixed(2))
}

func (t *SetAssetGrowth) Validate(base *domain.AppState) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Rate.LessThan(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("rate cannot be below -100, got %s", t.Rate), nil)
	}
	if t.AssetID != "" && base.FindAsset(t.AssetID) < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("asset %s not found", t.AssetID), nil)
	}
	return nil
}

func (t *SetAssetGrowth) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	for i := range modified.Assets {
		if t.AssetID == "" || modified.Assets[i].ID == t.AssetID {
			modified.Assets[i].GrowthRate = t.Rate
		}
	}
	return modified, nil
}

// SetSWR changes the safe withdrawal rate (percent).
type SetSWR struct {
	Rate decimal.Decimal
}

func (t *SetSWR) Name() string { return "set_swr" }

func (t *SetSWR) Description() string {
	return fmt.Sprintf("Set safe withdrawal rate to %s%%", t.Rate.StringFixed(2))
}

func (t *SetSWR) Validate(base *domain.AppState) error {
	if !t.Rate.IsPositive() || t.Rate.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("rate must be above 0 and at most 100, got %s", t.Rate), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetSWR) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Fire.SWR = t.Rate
	return modified, nil
}

// SetFireMode switches between the simple and rigorous FIRE targets.
type SetFireMode struct {
	Mode domain.FireMode
}

func (t *SetFireMode) Name() string { return "set_fire_mode" }

func (t *SetFireMode) Description() string {
	return fmt.Sprintf("Use %s FIRE mode", t.Mode)
}

func (t *SetFireMode) Validate(base *domain.AppState) error {
	if !t.Mode.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown mode %q", t.Mode), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetFireMode) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Fire.Mode = t.Mode
	return modified, nil
}

// SetRetirementCost sets the annual retirement spending used by the
// rigorous FIRE target.
type SetRetirementCost struct {
	Amount decimal.Decimal
}

func (t *SetRetirementCost) Name() string { return "set_retirement_cost" }

func (t *SetRetirementCost) Description() string {
	return fmt.Sprintf("Set retirement base cost to $%s a year", t.Amount.StringFixed(2))
}

func (t *SetRetirementCost) Validate(base *domain.AppState) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", t.Amount), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetRetirementCost) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Fire.RetirementBaseCost = t.Amount
	return modified, nil
}

// SetSurplusSink chooses the asset that receives reinvested surplus.
type SetSurplusSink struct {
	AssetID string
}

func (t *SetSurplusSink) Name() string { return "set_surplus_sink" }

func (t *SetSurplusSink) Description() string {
	return fmt.Sprintf("Reinvest surplus into asset %s", t.AssetID)
}

func (t *SetSurplusSink) Validate(base *domain.AppState) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if base.FindAsset(t.AssetID) < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("asset %s not found", t.AssetID), nil)
	}
	return nil
}

func (t *SetSurplusSink) Apply(base *domain.AppState) (*domain.AppState, error) {
	modified := base.DeepCopy()
	modified.Fire.SurplusSinkAssetID = t.AssetID
	return modified, nil
}
