package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// Scenario is a named list of transforms applied to the base snapshot
type Scenario struct {
	Name        string
	Description string
	Transforms  []transform.StateTransform
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string
	ConfigPath       string
}

// ParseAlternative parses "name=spec;spec" into a scenario
func (ce *CompareEngine) ParseAlternative(alt string) (Scenario, error) {
	name, specs, ok := strings.Cut(alt, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Scenario{}, fmt.Errorf("invalid alternative %q, expected name=transform:params;...", alt)
	}
	transforms, err := ce.TransformRegistry.ParseTransformSpecs(specs)
	if err != nil {
		return Scenario{}, fmt.Errorf("alternative %s: %w", name, err)
	}
	if len(transforms) == 0 {
		return Scenario{}, fmt.Errorf("alternative %s has no transforms", name)
	}
	return Scenario{Name: name, Transforms: transforms}, nil
}

// TemplateScenarios resolves template names into scenarios
func (ce *CompareEngine) TemplateScenarios(names []string) ([]Scenario, error) {
	scenarios := make([]Scenario, 0, len(names))
	for _, name := range names {
		tmpl, ok := ce.TemplateRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		scenarios = append(scenarios, Scenario{Name: tmpl.Name, Description: tmpl.Description, Transforms: tmpl.Transforms})
	}
	return scenarios, nil
}

// Compare runs the base snapshot and every alternative and computes deltas
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base *domain.AppState,
	scenarios []Scenario,
	options CompareOptions,
) (*ComparisonSet, error) {
	if base == nil {
		return nil, fmt.Errorf("base state cannot be nil")
	}
	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = "base"
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, ce.CalcEngine.Run(base))

	alternatives := make([]ComparisonResult, 0, len(scenarios))
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		modified, err := transform.ApplyTransforms(base, sc.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply scenario %s: %w", sc.Name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(sc.Name, ce.CalcEngine.Run(modified))
		altResult.Description = sc.Description
		altResult.Transforms = transform.Describe(sc.Transforms)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
