package calculation

import (
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateCashFlow groups the budget by category and routes each category to
// its account bucket. The surplus account, when present, also receives the
// surplus. Display amounts are expressed per displayUnit.
func CalculateCashFlow(state *domain.AppState, netCashPosition decimal.Decimal, displayUnit domain.FrequencyUnit) domain.CashFlow {
	byCategory := map[string]decimal.Decimal{}
	order := append([]string(nil), state.ExpenseCategories...)
	known := map[string]bool{}
	for _, c := range order {
		known[c] = true
	}
	for _, e := range state.Expenses {
		if !known[e.Category] {
			known[e.Category] = true
			order = append(order, e.Category)
		}
		byCategory[e.Category] = byCategory[e.Category].Add(expenseAnnual(e))
	}

	total := decimal.Zero
	for _, v := range byCategory {
		total = total.Add(v)
	}
	surplus := floorZero(netCashPosition.Sub(total))

	flow := domain.CashFlow{
		DisplayUnit:    displayUnit,
		TotalExpenses:  total,
		Surplus:        surplus,
		SurplusDisplay: FromAnnual(surplus, displayUnit),
	}

	for _, c := range order {
		annual := byCategory[c]
		flow.Categories = append(flow.Categories, domain.CategoryTotal{
			Category:  c,
			Annual:    annual,
			Display:   FromAnnual(annual, displayUnit),
			AccountID: state.CategoryMap[c],
		})
		if !annual.IsPositive() || state.CategoryMap[c] == "" {
			flow.UnmappedCategories = append(flow.UnmappedCategories, c)
		}
	}

	for _, acc := range state.Accounts {
		at := domain.AccountTotal{AccountID: acc.ID, Name: acc.Name, Annual: decimal.Zero, Categories: []string{}}
		for _, c := range order {
			if state.CategoryMap[c] == acc.ID {
				at.Annual = at.Annual.Add(byCategory[c])
				at.Categories = append(at.Categories, c)
			}
		}
		if acc.ID == domain.SurplusAccountID {
			at.Annual = at.Annual.Add(surplus)
		}
		at.Display = FromAnnual(at.Annual, displayUnit)
		flow.Accounts = append(flow.Accounts, at)
	}

	return flow
}
