package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []StateTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common what-if scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "extra_100",
		Description: "Repay an extra $100 each period",
		Transforms:  []StateTransform{&ExtraRepayment{Amount: decimal.NewFromInt(100)}},
	})
	registry.Register(Template{
		Name:        "extra_500",
		Description: "Repay an extra $500 each period",
		Transforms:  []StateTransform{&ExtraRepayment{Amount: decimal.NewFromInt(500)}},
	})
	registry.Register(Template{
		Name:        "rate_rise_1",
		Description: "Mortgage rate one point higher",
		Transforms:  []StateTransform{&rateShift{delta: decimal.NewFromInt(1)}},
	})
	registry.Register(Template{
		Name:        "rate_rise_2",
		Description: "Mortgage rate two points higher",
		Transforms:  []StateTransform{&rateShift{delta: decimal.NewFromInt(2)}},
	})
	registry.Register(Template{
		Name:        "cut_spending_10",
		Description: "Cut non-mortgage spending by 10%",
		Transforms:  []StateTransform{&ScaleExpenses{Factor: decimal.RequireFromString("0.9")}},
	})
	registry.Register(Template{
		Name:        "conservative_returns",
		Description: "All assets grow at 5% with a 3.5% withdrawal rate",
		Transforms: []StateTransform{
			&SetAssetGrowth{Rate: decimal.NewFromInt(5)},
			&SetSWR{Rate: decimal.RequireFromString("3.5")},
		},
	})
	registry.Register(Template{
		Name:        "rigorous",
		Description: "Use the rigorous FIRE target",
		Transforms:  []StateTransform{&SetFireMode{Mode: domain.FireModeRigorous}},
	})
	registry.Register(Template{
		Name:        "rent",
		Description: "Sell up and rent",
		Transforms:  []StateTransform{&SetRenting{Renting: true}},
	})

	return registry
}

// rateShift moves the current interest rate by delta points. It backs the
// rate templates, which are relative to whatever the snapshot holds.
type rateShift struct {
	delta decimal.Decimal
}

func (t *rateShift) Name() string { return "set_interest_rate" }

func (t *rateShift) Description() string {
	return fmt.Sprintf("Shift mortgage interest rate by %s points", t.delta.String())
}

func (t *rateShift) Validate(base *domain.AppState) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	return (&SetInterestRate{Rate: base.Mortgage.InterestRate.Add(t.delta)}).Validate(base)
}

func (t *rateShift) Apply(base *domain.AppState) (*domain.AppState, error) {
	return (&SetInterestRate{Rate: base.Mortgage.InterestRate.Add(t.delta)}).Apply(base)
}

// ApplyTemplate applies a template to a base snapshot
func ApplyTemplate(base *domain.AppState, template Template) (*domain.AppState, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-24s %s\n", t.Name, t.Description))
	}
	sb.WriteString("\nUsage:\n")
	sb.WriteString("  fireplan compare household.yaml --with extra_500,rate_rise_2\n")
	sb.WriteString("  fireplan compare household.yaml --alt \"offset=set_offset:balance=150000\"\n")

	return sb.String()
}
