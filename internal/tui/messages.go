package tui

import "github.com/rgehrsitz/fireplan/internal/domain"

// Tab is one screen of the TUI
type Tab int

const (
	TabIncome Tab = iota
	TabMortgage
	TabNetWorth
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabIncome:
		return "Income"
	case TabMortgage:
		return "Mortgage"
	case TabNetWorth:
		return "Net Worth"
	default:
		return "Unknown"
	}
}

// ReportLoadedMsg carries a freshly calculated report
type ReportLoadedMsg struct {
	Source string
	Report *domain.Report
}

// ErrorMsg reports a failed load
type ErrorMsg struct {
	Err error
}
