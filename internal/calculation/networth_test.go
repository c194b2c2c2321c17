package calculation

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func investorState(value, growth string) *domain.AppState {
	return &domain.AppState{
		UserSettings: domain.UserSettings{IsResident: true, IsRenting: true},
		Assets: []domain.AssetItem{
			{ID: "a1", Name: "Index fund", Value: d(value), GrowthRate: d(growth)},
		},
		Mortgage: domain.MortgageParams{LoanTermYears: 30, RepaymentFreq: domain.RepaymentMonthly},
		Fire: domain.FireSettings{
			Mode: domain.FireModeSimple,
			SWR:  d("4"),
		},
	}
}

func TestNetWorthSimulation_SimpleGrowthWithSurplus(t *testing.T) {
	state := investorState("100000", "7")

	sim := GenerateNetWorthSimulation(state, d("20000"))

	require.Len(t, sim.Data, ProjectionYears+1)
	assert.Equal(t, 0, sim.Data[0].Year)
	assert.Equal(t, 30, sim.Data[30].Year)
	assertDecimal(t, "100000", sim.Data[0].NetWorth, "today")
	assertNear(t, 127000, sim.Data[1].NetWorth, 1000, "year one")
	assertDecimal(t, "20000", sim.Velocity, "velocity")
}

func TestNetWorthSimulation_EmptyAssetsDropsSurplus(t *testing.T) {
	state := investorState("0", "0")
	state.Assets = nil
	logger := &TestLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	sim := engine.GenerateNetWorthSimulation(state, d("50000"))

	for _, row := range sim.Data {
		assert.True(t, row.NetWorth.IsZero(), "year %d", row.Year)
	}
	assert.NotEmpty(t, logger.Warn)
}

func TestNetWorthSimulation_SurplusSink(t *testing.T) {
	state := investorState("0", "0")
	state.Assets = append(state.Assets, domain.AssetItem{ID: "cash", Name: "Cash", Value: decimal.Zero, GrowthRate: decimal.Zero})

	t.Run("first asset by default", func(t *testing.T) {
		sim := GenerateNetWorthSimulation(state, d("12000"))
		assertDecimal(t, "12000", sim.Data[1].NetWorth, "net worth")
	})

	t.Run("named sink", func(t *testing.T) {
		named := state.DeepCopy()
		named.Fire.SurplusSinkAssetID = "cash"
		named.Assets[1].GrowthRate = d("12")
		plain := GenerateNetWorthSimulation(state, d("12000"))

		sim := GenerateNetWorthSimulation(named, d("12000"))

		assert.True(t, sim.Data[1].NetWorth.GreaterThan(plain.Data[1].NetWorth), "injection compounds in the growing sink")
	})

	t.Run("unknown sink drops injection", func(t *testing.T) {
		unknown := state.DeepCopy()
		unknown.Fire.SurplusSinkAssetID = "gone"
		logger := &TestLogger{}
		engine := NewCalculationEngine()
		engine.SetLogger(logger)

		sim := engine.GenerateNetWorthSimulation(unknown, d("12000"))

		assertDecimal(t, "0", sim.Data[30].NetWorth, "nothing reinvested")
		assert.NotEmpty(t, logger.Warn)
	})
}

func TestNetWorthSimulation_FreedRepayment(t *testing.T) {
	state := investorState("0", "0")
	state.UserSettings.IsRenting = false
	state.Mortgage.UserRepayment = decimalPtr(d("1000"))

	sim := GenerateNetWorthSimulation(state, decimal.Zero)

	assertDecimal(t, "12000", sim.Data[1].NetWorth, "repayment redirected once the loan is gone")

	state.UserSettings.IsRenting = true
	sim = GenerateNetWorthSimulation(state, decimal.Zero)
	assertDecimal(t, "0", sim.Data[1].NetWorth, "renters have no repayment to redirect")
}

func TestNetWorthSimulation_MortgageStaysPaidOff(t *testing.T) {
	state := investorState("0", "0")
	state.UserSettings.IsRenting = false
	state.Mortgage.Principal = d("50000")
	state.Mortgage.InterestRate = d("6")
	state.Mortgage.UserRepayment = decimalPtr(d("2000"))

	sim := GenerateNetWorthSimulation(state, decimal.Zero)

	paidOff := false
	for _, row := range sim.Data {
		assert.False(t, row.Mortgage.IsNegative())
		if paidOff {
			assert.True(t, row.Mortgage.IsZero(), "year %d mortgage came back", row.Year)
		}
		if row.Mortgage.IsZero() {
			paidOff = true
		}
	}
	assert.True(t, paidOff)
	assert.True(t, sim.Data[30].NetWorth.IsPositive(), "freed repayments were reinvested")
}

func TestNetWorthSimulation_FireTargets(t *testing.T) {
	t.Run("simple mode uses all expenses", func(t *testing.T) {
		state := investorState("0", "0")
		state.Expenses = []domain.ExpenseItem{{Name: "living", Amount: d("40000"), RepeatCount: 1, Unit: domain.FrequencyYear}}

		sim := GenerateNetWorthSimulation(state, decimal.Zero)

		assertDecimal(t, "1000000", sim.FireTarget, "25x expenses")
		for _, row := range sim.Data {
			assertDecimal(t, "1000000", row.FireTarget, "constant")
		}
	})

	t.Run("rigorous mode adds the mortgage bridge", func(t *testing.T) {
		state := investorState("100000", "0")
		state.UserSettings.IsRenting = false
		state.Fire.Mode = domain.FireModeRigorous
		state.Fire.RetirementBaseCost = d("40000")
		state.Mortgage.Principal = d("200000")
		state.Mortgage.InterestRate = d("5")
		state.Mortgage.UserRepayment = decimalPtr(d("3000"))
		state.Liabilities = []domain.LiabilityItem{{ID: "l1", Name: "Car", Balance: d("20000"), Category: domain.LiabilityPersonal}}

		sim := GenerateNetWorthSimulation(state, decimal.Zero)

		assertDecimal(t, "1200000", sim.FireTarget, "base cost x25 plus principal")
		assertDecimal(t, "80000", sim.Data[0].NetWorth, "assets less liabilities")
		assert.True(t, sim.Data[1].FireTarget.LessThan(sim.Data[0].FireTarget), "bridge shrinks as the loan is repaid")
		assertDecimal(t, "1000000", sim.Data[30].FireTarget, "no bridge once paid off")
	})

	t.Run("override is verbatim", func(t *testing.T) {
		state := investorState("0", "0")
		state.Fire.FireTargetOverride = decimalPtr(d("750000"))

		sim := GenerateNetWorthSimulation(state, decimal.Zero)

		assertDecimal(t, "750000", sim.FireTarget, "override")
		assertDecimal(t, "750000", sim.Data[30].FireTarget, "override every year")
	})

	t.Run("zero swr does not divide by zero", func(t *testing.T) {
		state := investorState("0", "0")
		state.Fire.SWR = decimal.Zero
		state.Expenses = []domain.ExpenseItem{{Name: "living", Amount: d("40000"), RepeatCount: 1, Unit: domain.FrequencyYear}}

		assert.NotPanics(t, func() {
			sim := GenerateNetWorthSimulation(state, decimal.Zero)
			assertDecimal(t, "0", sim.FireTarget, "target")
		})
	})
}

func TestNetWorthSimulation_FireYear(t *testing.T) {
	state := investorState("100000", "0")
	state.Fire.FireTargetOverride = decimalPtr(d("160000"))

	sim := GenerateNetWorthSimulation(state, d("12000"))

	require.NotNil(t, sim.FireYear)
	assert.Equal(t, 5, *sim.FireYear)

	sim = GenerateNetWorthSimulation(state, decimal.Zero)
	assert.Nil(t, sim.FireYear)
}

func TestNetWorthSimulation_PropertyCompoundsAnnually(t *testing.T) {
	state := investorState("0", "0")
	state.UserSettings.IsRenting = false
	state.Mortgage.PropertyValue = d("645000")
	state.Mortgage.GrowthRate = d("3.8")

	sim := GenerateNetWorthSimulation(state, decimal.Zero)

	assertDecimal(t, "669510", sim.Data[1].Property, "one year of growth")
	assert.True(t, sim.Data[1].NetWorth.IsZero(), "property is excluded from net worth")
}

func TestNetWorthSimulation_RigorousRowsAddUp(t *testing.T) {
	state := investorState("100000.005", "7.3")
	state.Fire.Mode = domain.FireModeRigorous
	state.Fire.RetirementBaseCost = d("40000")
	state.Liabilities = []domain.LiabilityItem{{ID: "car", Name: "Car", Balance: d("18500.337"), Category: domain.LiabilityPersonal}}

	for _, row := range GenerateNetWorthSimulation(state, d("20000.01")).Data {
		assert.True(t, row.NetWorth.Equal(row.Assets.Sub(row.Liabilities)),
			"year %d: net worth %s, assets %s, liabilities %s", row.Year, row.NetWorth, row.Assets, row.Liabilities)
	}
}

func TestNetWorthSimulation_Deterministic(t *testing.T) {
	state := domain.DefaultState()
	before := state.DeepCopy()

	first := GenerateNetWorthSimulation(state, d("15000"))
	second := GenerateNetWorthSimulation(state, d("15000"))

	assert.Equal(t, first, second)
	assert.Equal(t, before, state)
}

func TestCurrentPosition(t *testing.T) {
	pos := CurrentPosition(domain.DefaultState())

	assertDecimal(t, "57392", pos.LiquidAssets, "assets")
	assertDecimal(t, "645000", pos.Property, "property")
	assertDecimal(t, "464618.06", pos.Mortgage, "mortgage")
	assertDecimal(t, "18500", pos.Liabilities, "liabilities")
	assertDecimal(t, "219273.94", pos.NetWorth, "net worth")

	renter := domain.DefaultState()
	renter.UserSettings.IsRenting = true
	assertDecimal(t, "38892", CurrentPosition(renter).NetWorth, "renter net worth")
}
