package domain

import (
	"github.com/shopspring/decimal"
)

// FrequencyUnit is the period a recurring amount is expressed in
type FrequencyUnit string

const (
	FrequencyWeek      FrequencyUnit = "week"
	FrequencyFortnight FrequencyUnit = "fortnight"
	FrequencyMonth     FrequencyUnit = "month"
	FrequencyQuarter   FrequencyUnit = "quarter"
	FrequencyYear      FrequencyUnit = "year"
)

// WeeksPerYear is the weekly base every normalization goes through
const WeeksPerYear = 52

var occurrencesPerYear = map[FrequencyUnit]int64{
	FrequencyWeek:      52,
	FrequencyFortnight: 26,
	FrequencyMonth:     12,
	FrequencyQuarter:   4,
	FrequencyYear:      1,
}

// FrequencyUnits lists every supported unit, shortest period first
func FrequencyUnits() []FrequencyUnit {
	return []FrequencyUnit{FrequencyWeek, FrequencyFortnight, FrequencyMonth, FrequencyQuarter, FrequencyYear}
}

// Valid reports whether the unit is one of the supported units
func (u FrequencyUnit) Valid() bool {
	_, ok := occurrencesPerYear[u]
	return ok
}

// Multiplier returns the number of occurrences per year.
// Unknown units fall back to 1 (annual) so that snapshots saved with a
// malformed unit still load; callers that care should check Valid first.
func (u FrequencyUnit) Multiplier() decimal.Decimal {
	if n, ok := occurrencesPerYear[u]; ok {
		return decimal.NewFromInt(n)
	}
	return decimal.NewFromInt(1)
}

// Label returns the display label used in reports
func (u FrequencyUnit) Label() string {
	switch u {
	case FrequencyWeek:
		return "Week"
	case FrequencyFortnight:
		return "Fortnight"
	case FrequencyMonth:
		return "Month"
	case FrequencyQuarter:
		return "Quarter"
	case FrequencyYear:
		return "Year"
	default:
		return string(u)
	}
}

// RepaymentFrequency is the subset of units a mortgage can be repaid in
type RepaymentFrequency string

const (
	RepaymentWeekly      RepaymentFrequency = "week"
	RepaymentFortnightly RepaymentFrequency = "fortnight"
	RepaymentMonthly     RepaymentFrequency = "month"
)

// Valid reports whether the frequency is a supported repayment frequency
func (f RepaymentFrequency) Valid() bool {
	switch f {
	case RepaymentWeekly, RepaymentFortnightly, RepaymentMonthly:
		return true
	}
	return false
}

// PeriodsPerYear returns 52, 26 or 12. Anything else is treated as monthly.
func (f RepaymentFrequency) PeriodsPerYear() int64 {
	switch f {
	case RepaymentWeekly:
		return 52
	case RepaymentFortnightly:
		return 26
	default:
		return 12
	}
}

// MonthlyDivisor converts a monthly amortization payment into this frequency:
// a weekly repayment is a quarter of the monthly one, fortnightly is half.
func (f RepaymentFrequency) MonthlyDivisor() int64 {
	switch f {
	case RepaymentWeekly:
		return 4
	case RepaymentFortnightly:
		return 2
	default:
		return 1
	}
}
