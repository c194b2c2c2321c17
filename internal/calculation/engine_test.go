package calculation

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.NetIncomeCalc, "Should initialize net income calculator")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, ThresholdAlwaysClaimed, engine.NetIncomeCalc.Policy)
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	// Test setting a custom logger
	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// Test setting nil logger (should use no-op logger)
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_Run(t *testing.T) {
	engine := NewCalculationEngine()
	state := domain.DefaultState()

	report := engine.Run(state)

	require.NotNil(t, report)
	require.NotNil(t, report.Mortgage, "homeowners get a mortgage simulation")
	require.NotNil(t, report.Capacity)
	assert.Len(t, report.NetWorth.Data, ProjectionYears+1)
	assert.True(t, report.Surplus.Equal(SurplusAnnual(report.Breakdown, state)))
	assert.True(t, report.Surplus.Equal(report.CashFlow.Surplus))
	assert.True(t, report.NetWorth.Velocity.Equal(report.Surplus))
	assert.Equal(t, domain.FrequencyMonth, report.CashFlow.DisplayUnit)
	assertDecimal(t, "219273.94", report.Position.NetWorth, "position")
}

func TestCalculationEngine_RunRenter(t *testing.T) {
	state := domain.DefaultState()
	state.UserSettings.IsRenting = true

	report := NewCalculationEngine().Run(state)

	assert.Nil(t, report.Mortgage)
	assert.Nil(t, report.Capacity)
	for _, row := range report.NetWorth.Data {
		assert.True(t, row.Mortgage.IsZero())
		assert.True(t, row.Property.IsZero())
	}
}

func TestCalculationEngine_UnknownUnitWarns(t *testing.T) {
	state := domain.DefaultState()
	state.Expenses[1].Unit = domain.FrequencyUnit("decade")
	logger := &TestLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	engine.CalculateNetIncomeBreakdown(state)

	require.NotEmpty(t, logger.Warn)
	assert.Contains(t, logger.Warn[0], "Grocery")
	assertDecimal(t, "300", expenseAnnual(state.Expenses[1]), "treated as annual")
}

func TestCalculationEngine_ThresholdPolicy(t *testing.T) {
	state := domain.DefaultState()
	_ = state.ReleaseTaxFreeThreshold("1")
	engine := NewCalculationEngine()

	always := engine.CalculateNetIncomeBreakdown(state)
	engine.SetThresholdPolicy(ThresholdPerStream)
	perStream := engine.CalculateNetIncomeBreakdown(state)

	assert.True(t, perStream.BaseTax.GreaterThan(always.BaseTax))
}
