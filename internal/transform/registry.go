package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (StateTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_repayment", createSetRepayment)
	registry.Register("extra_repayment", createExtraRepayment)
	registry.Register("set_offset", createSetOffset)
	registry.Register("set_interest_rate", createSetInterestRate)
	registry.Register("set_renting", createSetRenting)

	registry.Register("set_asset_growth", createSetAssetGrowth)
	registry.Register("set_swr", createSetSWR)
	registry.Register("set_fire_mode", createSetFireMode)
	registry.Register("set_retirement_cost", createSetRetirementCost)
	registry.Register("set_surplus_sink", createSetSurplusSink)

	registry.Register("scale_expenses", createScaleExpenses)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (StateTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_asset_growth:asset=a3,rate=9"
func (r *TransformRegistry) ParseTransformSpec(spec string) (StateTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)
	if name == "" {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			k, v, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses a semicolon-separated list of specs
func (r *TransformRegistry) ParseTransformSpecs(specs string) ([]StateTransform, error) {
	var out []StateTransform
	for _, spec := range strings.Split(specs, ";") {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func requireDecimal(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func requireString(transform string, params map[string]string, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

// Factory functions for each transform

func createSetRepayment(params map[string]string) (StateTransform, error) {
	amount, err := requireDecimal("set_repayment", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetRepayment{Amount: amount}, nil
}

func createExtraRepayment(params map[string]string) (StateTransform, error) {
	amount, err := requireDecimal("extra_repayment", params, "amount")
	if err != nil {
		return nil, err
	}
	return &ExtraRepayment{Amount: amount}, nil
}

func createSetOffset(params map[string]string) (StateTransform, error) {
	balance, err := requireDecimal("set_offset", params, "balance")
	if err != nil {
		return nil, err
	}
	return &SetOffset{Balance: balance}, nil
}

func createSetInterestRate(params map[string]string) (StateTransform, error) {
	rate, err := requireDecimal("set_interest_rate", params, "rate")
	if err != nil {
		return nil, err
	}
	return &SetInterestRate{Rate: rate}, nil
}

func createSetRenting(params map[string]string) (StateTransform, error) {
	raw, err := requireString("set_renting", params, "renting")
	if err != nil {
		return nil, err
	}
	renting, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid renting value: %w", err)
	}
	return &SetRenting{Renting: renting}, nil
}

func createSetAssetGrowth(params map[string]string) (StateTransform, error) {
	rate, err := requireDecimal("set_asset_growth", params, "rate")
	if err != nil {
		return nil, err
	}
	return &SetAssetGrowth{AssetID: params["asset"], Rate: rate}, nil
}

func createSetSWR(params map[string]string) (StateTransform, error) {
	rate, err := requireDecimal("set_swr", params, "rate")
	if err != nil {
		return nil, err
	}
	return &SetSWR{Rate: rate}, nil
}

func createSetFireMode(params map[string]string) (StateTransform, error) {
	mode, err := requireString("set_fire_mode", params, "mode")
	if err != nil {
		return nil, err
	}
	return &SetFireMode{Mode: domain.FireMode(mode)}, nil
}

func createSetRetirementCost(params map[string]string) (StateTransform, error) {
	amount, err := requireDecimal("set_retirement_cost", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetRetirementCost{Amount: amount}, nil
}

func createSetSurplusSink(params map[string]string) (StateTransform, error) {
	asset, err := requireString("set_surplus_sink", params, "asset")
	if err != nil {
		return nil, err
	}
	return &SetSurplusSink{AssetID: asset}, nil
}

func createScaleExpenses(params map[string]string) (StateTransform, error) {
	factor, err := requireDecimal("scale_expenses", params, "factor")
	if err != nil {
		return nil, err
	}
	t := &ScaleExpenses{Factor: factor, Category: params["category"]}
	if raw, ok := params["include_mortgage"]; ok {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid include_mortgage value: %w", err)
		}
		t.IncludeMortgage = include
	}
	return t, nil
}
