package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Tax: 2024-25 resident brackets, Medicare levy 2%, surcharge and study loan tiers held constant",
	"Salary packaging is grossed up by 1.8868 for surcharge and study loan income tests",
	"Mortgage interest accrues monthly on the balance net of the offset account",
	"Assets compound monthly at (1 + rate)^(1/12); property compounds yearly",
	"Surplus and freed mortgage repayments are reinvested monthly into one asset",
	"All amounts in today's dollars; no inflation indexing",
}
