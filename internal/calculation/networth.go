package calculation

import (
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionYears is the horizon of the net worth projection. Year 0 is today.
const ProjectionYears = 30

// swrFactor is 100/swr, the multiple of annual cost the portfolio must reach
func swrFactor(swr decimal.Decimal) decimal.Decimal {
	if !swr.IsPositive() {
		return decimal.Zero
	}
	return hundred.Div(swr)
}

// FireTarget computes the target for a given outstanding mortgage balance.
// An override is returned verbatim.
func FireTarget(state *domain.AppState, mortgageBalance decimal.Decimal) decimal.Decimal {
	fire := state.Fire
	if fire.FireTargetOverride != nil {
		return *fire.FireTargetOverride
	}
	factor := swrFactor(fire.SWR)
	if fire.Mode == domain.FireModeRigorous {
		return fire.RetirementBaseCost.Mul(factor).Add(mortgageBalance)
	}
	return TotalAnnualExpenses(state).Mul(factor)
}

// totalLiabilities sums non-mortgage debt
func totalLiabilities(state *domain.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, l := range state.Liabilities {
		total = total.Add(l.Balance)
	}
	return total
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// CurrentPosition is today's balance sheet including property and mortgage
func CurrentPosition(state *domain.AppState) domain.Position {
	liquid := decimal.Zero
	for _, a := range state.Assets {
		liquid = liquid.Add(a.Value)
	}
	property, mortgage := decimal.Zero, decimal.Zero
	if !state.UserSettings.IsRenting {
		property = state.Mortgage.PropertyValue
		mortgage = state.Mortgage.Principal
	}
	liabilities := totalLiabilities(state)

	return domain.Position{
		LiquidAssets: liquid,
		Property:     property,
		Mortgage:     mortgage,
		Liabilities:  liabilities,
		NetWorth:     liquid.Add(property).Sub(mortgage).Sub(liabilities),
	}
}

// GenerateNetWorthSimulation uses a default engine
func GenerateNetWorthSimulation(state *domain.AppState, surplusAnnual decimal.Decimal) domain.NetWorthSimulation {
	return NewCalculationEngine().GenerateNetWorthSimulation(state, surplusAnnual)
}

// GenerateNetWorthSimulation projects investable net worth for 30 years
// against the FIRE target. Assets compound monthly and receive the surplus;
// once the mortgage is gone its repayment is redirected to the sink asset.
// Property and mortgage are tracked but excluded from net worth.
func (ce *CalculationEngine) GenerateNetWorthSimulation(state *domain.AppState, surplusAnnual decimal.Decimal) domain.NetWorthSimulation {
	renting := state.UserSettings.IsRenting
	m := state.Mortgage

	mortgage, offset, property := decimal.Zero, decimal.Zero, decimal.Zero
	if !renting {
		mortgage, offset, property = m.Principal, m.OffsetBalance, m.PropertyValue
	}

	assets := make([]decimal.Decimal, len(state.Assets))
	factors := make([]decimal.Decimal, len(state.Assets))
	for i, a := range state.Assets {
		assets[i] = a.Value
		factors[i] = monthlyGrowthFactor(a.GrowthRate)
	}

	sink := state.SurplusSinkIndex()
	if sink < 0 {
		if len(state.Assets) == 0 {
			ce.Logger.Warnf("no assets to receive surplus; reinvestment is dropped")
		} else {
			ce.Logger.Warnf("surplus sink asset %q not found; reinvestment is dropped", state.Fire.SurplusSinkAssetID)
		}
	}
	if !state.Fire.SWR.IsPositive() && state.Fire.FireTargetOverride == nil {
		ce.Logger.Warnf("safe withdrawal rate %s is not positive; FIRE target is zero", state.Fire.SWR)
	}

	monthlyRate := percent(m.InterestRate).Div(twelve)
	annualRepayment := ActualRepayment(state).Mul(decimal.NewFromInt(m.RepaymentFreq.PeriodsPerYear()))
	monthlyRepayment := annualRepayment.Div(twelve)
	monthlySurplus := surplusAnnual.Div(twelve)
	propertyFactor := one.Add(percent(m.GrowthRate))
	liabilities := totalLiabilities(state)
	rigorous := state.Fire.Mode == domain.FireModeRigorous

	data := make([]domain.NetWorthYear, 0, ProjectionYears+1)
	for year := 0; year <= ProjectionYears; year++ {
		totalAssets := cents(sum(assets))
		netWorth := totalAssets
		if rigorous {
			netWorth = totalAssets.Sub(cents(liabilities))
		}
		data = append(data, domain.NetWorthYear{
			Year:        year,
			NetWorth:    netWorth,
			FireTarget:  cents(FireTarget(state, mortgage)),
			Assets:      totalAssets,
			Liabilities: cents(liabilities),
			Mortgage:    cents(mortgage),
			Property:    cents(property),
		})
		if year == ProjectionYears {
			break
		}

		for month := 0; month < 12; month++ {
			injection := monthlySurplus
			if !renting {
				if mortgage.IsPositive() {
					mortgage = amortizeMonth(mortgage, offset, monthlyRate, monthlyRepayment)
				} else {
					injection = injection.Add(monthlyRepayment)
				}
			}
			for i := range assets {
				assets[i] = roundBalance(assets[i].Mul(factors[i]))
			}
			if sink >= 0 {
				assets[sink] = assets[sink].Add(injection)
			}
		}
		if !renting {
			property = roundBalance(property.Mul(propertyFactor))
		}
	}

	sim := domain.NetWorthSimulation{
		Data:       data,
		FireTarget: data[0].FireTarget,
		Velocity:   surplusAnnual,
	}
	if y, ok := FireYear(data); ok {
		sim.FireYear = &y
	}
	return sim
}

// FireYear returns the first projected year where net worth meets the target
func FireYear(data []domain.NetWorthYear) (int, bool) {
	for _, d := range data {
		if d.NetWorth.GreaterThanOrEqual(d.FireTarget) {
			return d.Year, true
		}
	}
	return 0, false
}
