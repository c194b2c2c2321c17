// Package tui is a read-only terminal dashboard over the planner engine.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/store"
)

// Loader returns the snapshot to display and a short name for its source
type Loader func(ctx context.Context) (*domain.AppState, string, error)

// FileLoader loads a snapshot file
func FileLoader(path string) Loader {
	return func(context.Context) (*domain.AppState, string, error) {
		state, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return nil, "", err
		}
		return state, path, nil
	}
}

// ProfileLoader loads a stored profile. An empty id loads the current profile.
func ProfileLoader(s store.ProfileStore, id string) Loader {
	return func(ctx context.Context) (*domain.AppState, string, error) {
		profileID := id
		if profileID == "" {
			current, err := s.CurrentProfile(ctx)
			if err != nil {
				return nil, "", err
			}
			profileID = current
		}
		state, err := s.LoadState(ctx, profileID)
		if err != nil {
			return nil, "", err
		}
		return state, "profile " + profileID, nil
	}
}

// Model is the bubbletea model for the dashboard
type Model struct {
	tab    Tab
	width  int
	height int

	loader Loader
	engine *calculation.CalculationEngine

	source  string
	report  *domain.Report
	loading bool
	err     error

	keys KeyMap
	help help.Model
}

// NewModel creates a model that calculates reports from loader
func NewModel(loader Loader, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		tab:     TabIncome,
		width:   100,
		height:  30,
		loader:  loader,
		engine:  engine,
		loading: true,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init loads the first report
func (m Model) Init() tea.Cmd {
	return loadReportCmd(m.loader, m.engine)
}

// Tab returns the active tab
func (m Model) Tab() Tab { return m.tab }

// Report returns the report on screen, if any
func (m Model) Report() *domain.Report { return m.report }

// Err returns the last load error
func (m Model) Err() error { return m.err }

func loadReportCmd(loader Loader, engine *calculation.CalculationEngine) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return ErrorMsg{Err: fmt.Errorf("no snapshot source configured")}
		}
		state, source, err := loader(context.Background())
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReportLoadedMsg{Source: source, Report: engine.Run(state)}
	}
}
