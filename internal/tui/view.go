package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/tui/scenes"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = tuistyles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			tuistyles.SubtitleStyle.Render("Fix the snapshot and press r to reload.")
	case m.report == nil:
		content = tuistyles.InfoStyle.Render("Calculating...")
	default:
		switch m.tab {
		case TabIncome:
			content = scenes.RenderIncome(m.report, m.width)
		case TabMortgage:
			content = scenes.RenderMortgage(m.report, m.width)
		case TabNetWorth:
			content = scenes.RenderNetWorth(m.report, m.width)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("FIRE Planner")
	if m.report != nil && m.report.Name != "" {
		title += tuistyles.SubtitleStyle.Render(m.report.Name)
	}
	return title
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		style := tuistyles.InactiveTabStyle
		if t == m.tab {
			style = tuistyles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderStatusBar() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())
	var right []string
	if m.loading {
		right = append(right, "loading")
	}
	if m.source != "" {
		right = append(right, m.source)
	}
	if len(right) > 0 {
		status += "  " + tuistyles.SubtitleStyle.Render(strings.Join(right, " • "))
	}
	return tuistyles.StatusBarStyle.Render(status)
}
