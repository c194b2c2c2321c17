package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ProgressBar shows how far a value is towards a target, e.g. net worth
// against the FIRE number
type ProgressBar struct {
	Current decimal.Decimal
	Target  decimal.Decimal
	Width   int
	Label   string
}

// NewProgressBar creates a progress bar
func NewProgressBar(current, target decimal.Decimal) *ProgressBar {
	return &ProgressBar{Current: current, Target: target, Width: 40}
}

// WithLabel sets the label shown above the bar
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage is Current/Target clamped to [0, 100]. A zero target counts as done.
func (p *ProgressBar) Percentage() float64 {
	if !p.Target.IsPositive() {
		return 100
	}
	pct := p.Current.Div(p.Target).Mul(decimal.NewFromInt(100)).InexactFloat64()
	return min(max(pct, 0), 100)
}

// Render returns the styled bar
func (p *ProgressBar) Render() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(p.Label))
		b.WriteString("\n")
	}

	pct := p.Percentage()
	filled := min(int(float64(p.Width)*pct/100), p.Width)

	b.WriteString("[")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", p.Width-filled)))
	b.WriteString("] ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(fmt.Sprintf("%.1f%%", pct)))
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf(" %s of %s",
		tuistyles.FormatCurrency(p.Current), tuistyles.FormatCurrency(p.Target))))
	return b.String()
}
