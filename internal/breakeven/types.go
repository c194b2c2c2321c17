package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what parameter to solve for
type OptimizationTarget string

const (
	// TargetRepaymentForPayoff solves for the smallest per-period repayment
	// that clears the mortgage by the target year
	TargetRepaymentForPayoff OptimizationTarget = "repayment_for_payoff"
	// TargetSurplusForFire solves for the smallest annual surplus that
	// reaches the FIRE target by the target year
	TargetSurplusForFire OptimizationTarget = "surplus_for_fire"
)

// AllTargets lists every supported target in display order
var AllTargets = []OptimizationTarget{TargetRepaymentForPayoff, TargetSurplusForFire}

// OptimizationRequest defines the parameters for a solver run
type OptimizationRequest struct {
	State         *domain.AppState   `json:"-"`
	Target        OptimizationTarget `json:"target"`
	TargetYear    int                `json:"target_year"`
	MaxIterations int                `json:"max_iterations"`
	Tolerance     decimal.Decimal    `json:"tolerance"` // dollars
}

// OptimizationResult contains the results of a solver run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	// Solved value: per-period repayment or annual surplus
	OptimalValue decimal.Decimal `json:"optimal_value"`
	BaseValue    decimal.Decimal `json:"base_value"`
	DiffFromBase decimal.Decimal `json:"diff_from_base"`

	RepaymentFreq domain.RepaymentFrequency `json:"repayment_freq,omitempty"`

	// Outcome at the solved value and for the unmodified snapshot
	AchievedYear *int `json:"achieved_year,omitempty"`
	BaseYear     *int `json:"base_year,omitempty"`
}

// MultiTargetResult contains the results of solving several targets for one year
type MultiTargetResult struct {
	TargetYear      int                  `json:"target_year"`
	Results         []OptimizationResult `json:"results"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in dollars
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 60,
	}
}

// Validate checks if the request is internally consistent
func (r *OptimizationRequest) Validate() error {
	if r.State == nil {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "state is required",
		}
	}

	switch r.Target {
	case TargetRepaymentForPayoff:
		if r.State.UserSettings.IsRenting {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "repayment_for_payoff needs a mortgage but the household is renting",
			}
		}
		if r.TargetYear < 1 || r.TargetYear > r.State.Mortgage.LoanTermYears {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   fmt.Sprintf("target year must be between 1 and the loan term (%d), got %d", r.State.Mortgage.LoanTermYears, r.TargetYear),
			}
		}
	case TargetSurplusForFire:
		if r.TargetYear < 0 || r.TargetYear > calculation.ProjectionYears {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   fmt.Sprintf("target year must be between 0 and %d, got %d", calculation.ProjectionYears, r.TargetYear),
			}
		}
	default:
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("unsupported optimization target: %s", r.Target),
		}
	}

	if r.Tolerance.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "tolerance cannot be negative",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
