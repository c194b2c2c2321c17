package domain

import (
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id, name, amount string, repeat int, unit FrequencyUnit, category string) ExpenseItem {
	return ExpenseItem{ID: id, Name: name, Amount: dec(amount), RepeatCount: repeat, Unit: unit, Category: category}
}

// DefaultState returns the sample household used by `fireplan init` and as a
// fixture in tests: one salaried earner with packaging, a tax-free side
// income, a fortnightly mortgage linked to the budget and six assets.
func DefaultState() *AppState {
	mortgageExpense := expense("e1", "Mortgage", "1200.00", 1, FrequencyFortnight, "Residential Property")
	mortgageExpense.IsMortgageLink = true

	return &AppState{
		UserSettings: UserSettings{
			IsResident:       true,
			HasPrivateHealth: true,
		},
		Incomes: []IncomeStream{
			{
				ID:              "1",
				Name:            "Corporate Salary",
				Type:            IncomeSalary,
				Amount:          dec("2580.04"),
				RepeatCount:     1,
				Unit:            FrequencyFortnight,
				TaxTreatment:    TreatmentThresholdClaimed,
				SalaryPackaging: dec("485.84"),
				SalarySacrifice: decimal.Zero,
				AdminFee:        dec("8.13"),
				SuperRate:       dec("11.5"),
			},
			{
				ID:              "2",
				Name:            "Side Hustle",
				Type:            IncomeTaxFree,
				Amount:          dec("800"),
				RepeatCount:     1,
				Unit:            FrequencyWeek,
				TaxTreatment:    TreatmentContractorFlat,
				SalaryPackaging: decimal.Zero,
				SalarySacrifice: decimal.Zero,
				AdminFee:        decimal.Zero,
				SuperRate:       decimal.Zero,
			},
		},
		Expenses: []ExpenseItem{
			mortgageExpense,
			expense("e2", "Grocery", "300.00", 1, FrequencyWeek, "Daily"),
			expense("e3", "Private Health Insurance", "37.35", 1, FrequencyFortnight, "Health"),
			expense("e4", "Electricity bill", "120.00", 1, FrequencyMonth, "Utility"),
			expense("e5", "Water bill- fixed", "175.00", 1, FrequencyQuarter, "Utility"),
			expense("e6", "Water bill", "115.00", 1, FrequencyQuarter, "Utility"),
			expense("e7", "Gas bill", "80.70", 2, FrequencyMonth, "Utility"),
			expense("e8", "Internet", "65.00", 1, FrequencyMonth, "Utility"),
			expense("e9", "Council rate", "530.00", 1, FrequencyQuarter, "Property"),
			expense("e10", "Body Corp", "700.00", 1, FrequencyQuarter, "Property"),
			expense("e11", "Car Insurance", "510.00", 1, FrequencyYear, "Vehicle"),
			expense("e12", "Home content insurance", "370.00", 1, FrequencyYear, "Property"),
			expense("e13", "Rego", "235.38", 3, FrequencyMonth, "Vehicle"),
			expense("e14", "Commute", "60.00", 1, FrequencyWeek, "Commute"),
			expense("e15", "Logbook Service", "350.00", 1, FrequencyYear, "Vehicle"),
			expense("e16", "Soundcloud", "6.99", 1, FrequencyMonth, "Membership"),
			expense("e17", "Apple music", "6.99", 1, FrequencyMonth, "Membership"),
			expense("e18", "Travel fund", "2500.00", 1, FrequencyYear, "Travel"),
			expense("e19", "Driver license", "85.96", 3, FrequencyYear, "Vehicle"),
			expense("e20", "Fuel", "0", 1, FrequencyFortnight, "Vehicle"),
			expense("e21", "Buffer", "50.00", 1, FrequencyWeek, "Savings"),
		},
		ExpenseCategories: []string{
			"Residential Property", "Non-deductible debt", "Health", "Vehicle", "Travel",
			"Commute", "Debt", "Membership", "Utility", "Property", "Daily", "Savings", "Other",
		},
		Accounts: []AccountBucket{
			{ID: "1", Name: "BOQ saving", Color: "#ec4899"},
			{ID: "2", Name: "HSBC cash", Color: "#a855f7"},
			{ID: "3", Name: "UP Bank", Color: "#f59e0b"},
			{ID: SurplusAccountID, Name: "Surplus", Color: "#10b981"},
		},
		CategoryMap: map[string]string{
			"Health":     "3",
			"Vehicle":    "3",
			"Travel":     "3",
			"Commute":    "1",
			"Debt":       "3",
			"Membership": "3",
			"Utility":    "3",
			"Property":   "3",
			"Daily":      "2",
			"Savings":    "3",
			"Other":      "2",
			"Surplus":    SurplusAccountID,
		},
		Assets: []AssetItem{
			{ID: "a1", Name: "A200", Value: dec("7218"), Category: "Shares", GrowthRate: dec("13.14")},
			{ID: "a2", Name: "DHHF", Value: dec("8734"), Category: "Shares", GrowthRate: dec("12.07")},
			{ID: "a3", Name: "NDQ", Value: dec("15152"), Category: "Shares", GrowthRate: dec("21.92")},
			{ID: "a4", Name: "VDHG", Value: dec("8833"), Category: "Shares", GrowthRate: dec("11.22")},
			{ID: "a5", Name: "Emergency Fund", Value: dec("11724"), Category: "Cash", GrowthRate: dec("1.25")},
			{ID: "a6", Name: "Bank saving", Value: dec("5731"), Category: "Cash", GrowthRate: dec("4")},
		},
		AssetCategories: []string{"Cash", "Shares", "Super", "Crypto", "Business Equity", "Property Equity"},
		Liabilities: []LiabilityItem{
			{ID: "l1", Name: "Car Loan", Balance: dec("18500"), Category: LiabilityPersonal},
		},
		Mortgage: MortgageParams{
			Principal:     dec("464618.06"),
			OffsetBalance: dec("104351.02"),
			InterestRate:  dec("5.39"),
			LoanTermYears: 30,
			RepaymentFreq: RepaymentFortnightly,
			PropertyValue: dec("645000"),
			GrowthRate:    dec("3.8"),
		},
		Fire: FireSettings{
			Mode:               FireModeRigorous,
			RetirementBaseCost: dec("35500"),
			SWR:                dec("4"),
		},
	}
}
