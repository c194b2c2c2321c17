package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestInputParser_LoadFromFile(t *testing.T) {
	state, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Sample household", state.UserSettings.Name)
	require.Len(t, state.Incomes, 2)
	assert.Equal(t, "salary", state.Incomes[0].ID)
	assert.True(t, state.Incomes[0].Amount.Equal(decimal.RequireFromString("2580.04")))
	assert.Equal(t, domain.TreatmentThresholdClaimed, state.Incomes[0].TaxTreatment)

	side := state.Incomes[1]
	assert.NotEmpty(t, side.ID, "missing IDs are generated")
	assert.Equal(t, 1, side.RepeatCount)
	assert.Equal(t, domain.TreatmentThresholdNotClaimed, side.TaxTreatment)

	assert.Equal(t, 3, state.Expenses[2].RepeatCount)
	assert.True(t, state.Expenses[0].IsMortgageLink)
	assert.Equal(t, domain.LiabilityPersonal, state.Liabilities[0].Category)
	assert.Equal(t, domain.RepaymentFortnightly, state.Mortgage.RepaymentFreq)
	assert.Equal(t, domain.FireModeRigorous, state.Fire.Mode)
	assert.Equal(t, 0, state.SurplusSinkIndex())
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromBytes([]byte("incomes: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromBytes_JSON(t *testing.T) {
	data := []byte(`{
		"incomes": [{"id": "1", "name": "Salary", "amount": "100000", "unit": "year", "tax_treatment": "tft"}],
		"user_settings": {"is_resident": true, "is_renting": true},
		"fire": {"swr": 4, "retirement_base_cost": 40000}
	}`)
	state, err := NewInputParser().LoadFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, domain.IncomeSalary, state.Incomes[0].Type)
	assert.Equal(t, domain.FireModeSimple, state.Fire.Mode)
	assert.True(t, state.UserSettings.IsRenting)
}

func TestInputParser_DefaultStateIsValid(t *testing.T) {
	require.NoError(t, NewInputParser().ValidateState(domain.DefaultState()))
}

func TestInputParser_ApplyDefaults_Contractor(t *testing.T) {
	state := &domain.AppState{Incomes: []domain.IncomeStream{{Name: "Consulting", Type: domain.IncomeContractor}}}
	NewInputParser().ApplyDefaults(state)
	assert.Equal(t, domain.TreatmentContractorFlat, state.Incomes[0].TaxTreatment)
	assert.Equal(t, domain.RepaymentMonthly, state.Mortgage.RepaymentFreq)
}

func TestInputParser_ValidateState(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.AppState)
		wantErr string
	}{
		{
			name:    "negative income",
			mutate:  func(s *domain.AppState) { s.Incomes[0].Amount = decimal.NewFromInt(-1) },
			wantErr: "amount cannot be negative",
		},
		{
			name:    "unknown unit",
			mutate:  func(s *domain.AppState) { s.Expenses[1].Unit = "decade" },
			wantErr: "unknown frequency unit",
		},
		{
			name:    "zero repeat count",
			mutate:  func(s *domain.AppState) { s.Expenses[1].RepeatCount = 0 },
			wantErr: "repeat count must be at least 1",
		},
		{
			name:    "unknown income type",
			mutate:  func(s *domain.AppState) { s.Incomes[0].Type = "lottery" },
			wantErr: "unknown type",
		},
		{
			name: "two threshold claimants",
			mutate: func(s *domain.AppState) {
				s.Incomes[1].TaxTreatment = domain.TreatmentThresholdClaimed
			},
			wantErr: "only one income stream can claim",
		},
		{
			name:    "duplicate income id",
			mutate:  func(s *domain.AppState) { s.Incomes[1].ID = s.Incomes[0].ID },
			wantErr: "duplicate id",
		},
		{
			name:    "super rate above 100",
			mutate:  func(s *domain.AppState) { s.Incomes[0].SuperRate = decimal.NewFromInt(101) },
			wantErr: "super rate must be between 0 and 100",
		},
		{
			name:    "expense category not listed",
			mutate:  func(s *domain.AppState) { s.Expenses[1].Category = "Gambling" },
			wantErr: "is not in the category list",
		},
		{
			name:    "liability category",
			mutate:  func(s *domain.AppState) { s.Liabilities[0].Category = "mystery" },
			wantErr: "unknown category",
		},
		{
			name:    "loan term zero",
			mutate:  func(s *domain.AppState) { s.Mortgage.LoanTermYears = 0 },
			wantErr: "loan term must be between 1 and 50 years",
		},
		{
			name:    "repayment frequency",
			mutate:  func(s *domain.AppState) { s.Mortgage.RepaymentFreq = "daily" },
			wantErr: "unknown repayment frequency",
		},
		{
			name:    "swr zero",
			mutate:  func(s *domain.AppState) { s.Fire.SWR = decimal.Zero },
			wantErr: "safe withdrawal rate",
		},
		{
			name:    "unknown fire mode",
			mutate:  func(s *domain.AppState) { s.Fire.Mode = "lean" },
			wantErr: "unknown mode",
		},
		{
			name:    "surplus sink not found",
			mutate:  func(s *domain.AppState) { s.Fire.SurplusSinkAssetID = "missing" },
			wantErr: "surplus sink asset",
		},
		{
			name:    "category mapped to unknown account",
			mutate:  func(s *domain.AppState) { s.CategoryMap["Daily"] = "nowhere" },
			wantErr: "maps to unknown account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.DefaultState()
			tt.mutate(state)
			err := NewInputParser().ValidateState(state)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_ValidateState_RentingSkipsMortgage(t *testing.T) {
	state := domain.DefaultState()
	state.UserSettings.IsRenting = true
	state.Mortgage = domain.MortgageParams{}
	assert.NoError(t, NewInputParser().ValidateState(state))
}

func TestInputParser_SaveToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	parser := NewInputParser()
	original := domain.DefaultState()

	require.NoError(t, parser.SaveToFile(original, path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Expenses, len(original.Expenses))
	assert.True(t, loaded.Mortgage.Principal.Equal(original.Mortgage.Principal))
	assert.Equal(t, original.CategoryMap, loaded.CategoryMap)
}
