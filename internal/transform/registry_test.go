package transform

import (
	"testing"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Equal(t, []string{
		"extra_repayment", "scale_expenses", "set_asset_growth", "set_fire_mode", "set_interest_rate",
		"set_offset", "set_renting", "set_repayment", "set_retirement_cost", "set_surplus_sink", "set_swr",
	}, names)
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	tests := []struct {
		spec     string
		wantName string
		wantErr  string
	}{
		{spec: "set_repayment:amount=1500", wantName: "set_repayment"},
		{spec: "extra_repayment: amount = 250", wantName: "extra_repayment"},
		{spec: "set_offset:balance=200000", wantName: "set_offset"},
		{spec: "set_interest_rate:rate=6.25", wantName: "set_interest_rate"},
		{spec: "set_renting:renting=true", wantName: "set_renting"},
		{spec: "set_asset_growth:asset=a1,rate=8", wantName: "set_asset_growth"},
		{spec: "set_asset_growth:rate=8", wantName: "set_asset_growth"},
		{spec: "set_swr:rate=3.5", wantName: "set_swr"},
		{spec: "set_fire_mode:mode=simple", wantName: "set_fire_mode"},
		{spec: "set_retirement_cost:amount=42000", wantName: "set_retirement_cost"},
		{spec: "set_surplus_sink:asset=a2", wantName: "set_surplus_sink"},
		{spec: "scale_expenses:factor=0.9,category=Daily,include_mortgage=false", wantName: "scale_expenses"},
		{spec: "unknown:x=1", wantErr: "unknown transform"},
		{spec: "set_swr:rate", wantErr: "invalid parameter format"},
		{spec: "set_swr:", wantErr: "requires 'rate' parameter"},
		{spec: "set_swr:rate=abc", wantErr: "invalid rate value"},
		{spec: "set_renting:renting=maybe", wantErr: "invalid renting value"},
		{spec: ":rate=1", wantErr: "invalid transform spec format"},
	}

	registry := NewTransformRegistry()
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			tr, err := registry.ParseTransformSpec(tt.spec)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, tr.Name())
			assert.NotEmpty(t, tr.Description())
			assert.NoError(t, tr.Validate(domain.DefaultState()))
		})
	}
}

func TestTransformRegistry_ParseTransformSpecs(t *testing.T) {
	transforms, err := NewTransformRegistry().ParseTransformSpecs("set_offset:balance=1; set_swr:rate=3 ;")
	require.NoError(t, err)
	require.Len(t, transforms, 2)
	assert.Equal(t, []string{"Set offset balance to $1.00", "Set safe withdrawal rate to 3.00%"}, Describe(transforms))

	_, err = NewTransformRegistry().ParseTransformSpecs("set_offset:balance=1;bogus:x=1")
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()
	assert.Contains(t, registry.List(), "extra_500")

	tmpl, ok := registry.Get("RATE_RISE_2")
	require.True(t, ok)

	base := domain.DefaultState()
	out, err := ApplyTemplate(base, tmpl)
	require.NoError(t, err)
	assert.True(t, out.Mortgage.InterestRate.Equal(d("7.39")))

	for _, name := range registry.List() {
		tmpl, _ := registry.Get(name)
		_, err := ApplyTemplate(base, tmpl)
		assert.NoError(t, err, name)
	}

	assert.Equal(t, []string{"a", "b"}, ParseTemplateList(" a, ,b"))
	assert.Nil(t, ParseTemplateList(""))
	assert.Contains(t, GetTemplateHelp(registry), "extra_500")
	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}
