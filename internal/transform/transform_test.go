package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApplyTransforms_NilState(t *testing.T) {
	_, err := ApplyTransforms(nil, []StateTransform{&SetSWR{Rate: d("4")}})
	assert.Error(t, err)
}

func TestApplyTransforms_EmptyReturnsCopy(t *testing.T) {
	base := domain.DefaultState()
	result, err := ApplyTransforms(base, nil)
	require.NoError(t, err)
	assert.NotSame(t, base, result)
	assert.Equal(t, base.Mortgage.Principal, result.Mortgage.Principal)
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(domain.DefaultState(), []StateTransform{nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0 is nil")
}

func TestApplyTransforms_Chain(t *testing.T) {
	base := domain.DefaultState()
	result, err := ApplyTransforms(base, []StateTransform{
		&SetOffset{Balance: d("150000")},
		&SetInterestRate{Rate: d("6.1")},
		&SetSWR{Rate: d("3.5")},
	})
	require.NoError(t, err)

	assert.True(t, result.Mortgage.OffsetBalance.Equal(d("150000")))
	assert.True(t, result.Mortgage.InterestRate.Equal(d("6.1")))
	assert.True(t, result.Fire.SWR.Equal(d("3.5")))

	assert.True(t, base.Mortgage.OffsetBalance.Equal(d("104351.02")), "base must be untouched")
	assert.True(t, base.Fire.SWR.Equal(d("4")))
}

func TestApplyTransforms_ValidationError(t *testing.T) {
	_, err := ApplyTransforms(domain.DefaultState(), []StateTransform{&SetOffset{Balance: d("-1")}})
	require.Error(t, err)

	var te *TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "set_offset", te.TransformName)
	assert.Equal(t, "validate", te.Operation)
}

func TestTransformError(t *testing.T) {
	inner := errors.New("boom")
	err := NewTransformError("x", "apply", "failed", inner)
	assert.Equal(t, "transform x (apply): failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "transform x (validate): bad", NewTransformError("x", "validate", "bad", nil).Error())
}

func TestMortgageTransforms(t *testing.T) {
	base := domain.DefaultState()

	t.Run("set_repayment", func(t *testing.T) {
		out, err := (&SetRepayment{Amount: d("1500")}).Apply(base)
		require.NoError(t, err)
		require.NotNil(t, out.Mortgage.UserRepayment)
		assert.True(t, out.Mortgage.UserRepayment.Equal(d("1500")))
		assert.Nil(t, base.Mortgage.UserRepayment)
	})

	t.Run("extra_repayment adds to budget-derived repayment", func(t *testing.T) {
		// linked budget is 1200 a fortnight, matching the fortnightly loan
		out, err := (&ExtraRepayment{Amount: d("300")}).Apply(base)
		require.NoError(t, err)
		require.NotNil(t, out.Mortgage.UserRepayment)
		assert.True(t, out.Mortgage.UserRepayment.Equal(d("1500")), "got %s", out.Mortgage.UserRepayment)
	})

	t.Run("extra_repayment cannot go negative", func(t *testing.T) {
		err := (&ExtraRepayment{Amount: d("-5000")}).Validate(base)
		assert.Error(t, err)
	})

	t.Run("set_interest_rate bounds", func(t *testing.T) {
		assert.Error(t, (&SetInterestRate{Rate: d("101")}).Validate(base))
		assert.NoError(t, (&SetInterestRate{Rate: d("0")}).Validate(base))
	})

	t.Run("set_renting", func(t *testing.T) {
		out, err := (&SetRenting{Renting: true}).Apply(base)
		require.NoError(t, err)
		assert.True(t, out.UserSettings.IsRenting)
		assert.Nil(t, calculation.NewCalculationEngine().Run(out).Mortgage)
	})
}

func TestFireTransforms(t *testing.T) {
	base := domain.DefaultState()

	out, err := ApplyTransforms(base, []StateTransform{&SetAssetGrowth{AssetID: "a5", Rate: d("3")}})
	require.NoError(t, err)
	assert.True(t, out.Assets[4].GrowthRate.Equal(d("3")))
	assert.True(t, out.Assets[0].GrowthRate.Equal(d("13.14")))

	out, err = ApplyTransforms(base, []StateTransform{&SetAssetGrowth{Rate: d("6")}})
	require.NoError(t, err)
	for _, a := range out.Assets {
		assert.True(t, a.GrowthRate.Equal(d("6")))
	}

	_, err = ApplyTransforms(base, []StateTransform{&SetAssetGrowth{AssetID: "nope", Rate: d("6")}})
	assert.Error(t, err)

	assert.Error(t, (&SetSWR{Rate: d("0")}).Validate(base))
	assert.Error(t, (&SetFireMode{Mode: "lean"}).Validate(base))
	assert.Error(t, (&SetRetirementCost{Amount: d("-1")}).Validate(base))
	assert.Error(t, (&SetSurplusSink{AssetID: "missing"}).Validate(base))

	out, err = ApplyTransforms(base, []StateTransform{
		&SetFireMode{Mode: domain.FireModeSimple},
		&SetRetirementCost{Amount: d("40000")},
		&SetSurplusSink{AssetID: "a3"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FireModeSimple, out.Fire.Mode)
	assert.True(t, out.Fire.RetirementBaseCost.Equal(d("40000")))
	assert.Equal(t, 2, out.SurplusSinkIndex())
}

func TestScaleExpenses(t *testing.T) {
	base := domain.DefaultState()

	out, err := ApplyTransforms(base, []StateTransform{&ScaleExpenses{Factor: d("0.5")}})
	require.NoError(t, err)
	assert.True(t, out.Expenses[0].Amount.Equal(d("1200")), "mortgage-linked expense is kept")
	assert.True(t, out.Expenses[1].Amount.Equal(d("150")))

	out, err = ApplyTransforms(base, []StateTransform{&ScaleExpenses{Factor: d("2"), Category: "Utility"}})
	require.NoError(t, err)
	assert.True(t, out.Expenses[1].Amount.Equal(d("300")), "other categories untouched")
	assert.True(t, out.Expenses[3].Amount.Equal(d("240")))

	out, err = ApplyTransforms(base, []StateTransform{&ScaleExpenses{Factor: d("0"), IncludeMortgage: true}})
	require.NoError(t, err)
	assert.True(t, out.Expenses[0].Amount.IsZero())

	assert.Error(t, (&ScaleExpenses{Factor: d("-1")}).Validate(base))
	assert.Error(t, (&ScaleExpenses{Factor: d("1"), Category: "Yachts"}).Validate(base))
}
