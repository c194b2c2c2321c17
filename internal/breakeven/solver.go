package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds break-even repayments and surpluses by binary search
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// candidateCheck evaluates one candidate value; ok reports whether the goal is met
type candidateCheck func(value decimal.Decimal) (year *int, ok bool, err error)

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetRepaymentForPayoff:
		return s.optimizeRepayment(ctx, req)
	case TargetSurplusForFire:
		return s.optimizeSurplus(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
}

// quietEngine returns a copy of the engine that does not log, so candidate
// checks do not repeat the engine's warnings on every iteration
func (s *Solver) quietEngine() *calculation.CalculationEngine {
	quiet := *s.CalcEngine
	quiet.Logger = calculation.NopLogger{}
	return &quiet
}

// optimizeRepayment finds the smallest per-period repayment that pays the
// loan off by the target year
func (s *Solver) optimizeRepayment(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	engine := s.quietEngine()
	state := req.State

	check := func(value decimal.Decimal) (*int, bool, error) {
		modified, err := transform.ApplyTransforms(state, []transform.StateTransform{&transform.SetRepayment{Amount: value}})
		if err != nil {
			return nil, false, err
		}
		year := payoffYear(engine.GenerateMortgageSimulation(modified))
		return year, year != nil && *year <= req.TargetYear, nil
	}

	// Repaying the balance plus a year of interest every period clears the
	// loan in the first month
	m := state.Mortgage
	high := m.Principal.Mul(decimal.NewFromInt(1).Add(m.InterestRate.Div(decimal.NewFromInt(100)))).Add(decimal.NewFromInt(1))

	value, iterations, converged, err := s.bisect(ctx, req, "optimize_repayment", decimal.Zero, high, false, check)
	if err != nil {
		return nil, err
	}

	base := calculation.ActualRepayment(state)
	result := s.newResult(req, value, base, iterations, converged)
	result.RepaymentFreq = m.RepaymentFreq
	if result.AchievedYear, err = evaluate("optimize_repayment", check, value); err != nil {
		return nil, err
	}
	result.BaseYear = payoffYear(engine.GenerateMortgageSimulation(state))
	return result, nil
}

// optimizeSurplus finds the smallest annual surplus that reaches the FIRE
// target by the target year
func (s *Solver) optimizeSurplus(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	engine := s.quietEngine()
	state := req.State

	check := func(value decimal.Decimal) (*int, bool, error) {
		sim := engine.GenerateNetWorthSimulation(state, value)
		return sim.FireYear, sim.FireYear != nil && *sim.FireYear <= req.TargetYear, nil
	}

	value, iterations, converged, err := s.bisect(ctx, req, "optimize_surplus", decimal.Zero, decimal.NewFromInt(10000), true, check)
	if err != nil {
		return nil, err
	}

	base := engine.Surplus(state)
	result := s.newResult(req, value, base, iterations, converged)
	if result.AchievedYear, err = evaluate("optimize_surplus", check, value); err != nil {
		return nil, err
	}
	if result.BaseYear, err = evaluate("optimize_surplus", check, base); err != nil {
		return nil, err
	}
	return result, nil
}

// evaluate reports the year check reaches for value
func evaluate(operation string, check candidateCheck, value decimal.Decimal) (*int, error) {
	year, _, err := check(value)
	if err != nil {
		return nil, &BreakEvenError{
			Operation: operation,
			Message:   fmt.Sprintf("failed to evaluate %s", value.StringFixed(2)),
			Cause:     err,
		}
	}
	return year, nil
}

// bisect searches [low, high] for the smallest value that satisfies check.
// With expand set, high doubles until it satisfies check. Every evaluation
// counts towards MaxIterations.
func (s *Solver) bisect(
	ctx context.Context,
	req OptimizationRequest,
	operation string,
	low, high decimal.Decimal,
	expand bool,
	check candidateCheck,
) (decimal.Decimal, int, bool, error) {
	logger := s.CalcEngine.Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	iterations := 0

	eval := func(value decimal.Decimal) (bool, error) {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		iterations++
		year, ok, err := check(value)
		if err != nil {
			return false, &BreakEvenError{Operation: operation, Message: "failed to evaluate candidate", Cause: err}
		}
		logger.Debugf("%s iteration %d: value %s year %s met %t",
			operation, iterations, value.StringFixed(2), yearString(year), ok)
		return ok, nil
	}

	ok, err := eval(low)
	if err != nil {
		return decimal.Zero, iterations, false, err
	}
	if ok {
		return low, iterations, true, nil
	}

	for {
		ok, err := eval(high)
		if err != nil {
			return decimal.Zero, iterations, false, err
		}
		if ok {
			break
		}
		if !expand || iterations >= req.MaxIterations {
			return decimal.Zero, iterations, false, &BreakEvenError{
				Operation: operation,
				Message:   fmt.Sprintf("target year %d is unreachable", req.TargetYear),
			}
		}
		low = high
		high = high.Mul(two)
	}

	for iterations < req.MaxIterations {
		if high.Sub(low).LessThanOrEqual(req.Tolerance) {
			return high.RoundCeil(2), iterations, true, nil
		}
		mid := low.Add(high).Div(two)
		ok, err := eval(mid)
		if err != nil {
			return decimal.Zero, iterations, false, err
		}
		if ok {
			high = mid
		} else {
			low = mid
		}
	}

	converged := high.Sub(low).LessThanOrEqual(req.Tolerance)
	return high.RoundCeil(2), iterations, converged, nil
}

func (s *Solver) newResult(req OptimizationRequest, value, base decimal.Decimal, iterations int, converged bool) *OptimizationResult {
	result := &OptimizationResult{
		Request:      req,
		Success:      converged,
		Iterations:   iterations,
		OptimalValue: value,
		BaseValue:    base.Round(2),
		DiffFromBase: value.Sub(base).Round(2),
	}
	if converged {
		result.ConvergenceInfo = fmt.Sprintf("Binary search converged within $%s", req.Tolerance.StringFixed(2))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	return result
}

// payoffYear is the first sampled year with a zero actual balance
func payoffYear(sim domain.MortgageSimulation) *int {
	for _, d := range sim.Data {
		if d.BalanceActual.IsZero() {
			year := d.Year
			return &year
		}
	}
	return nil
}

func yearString(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("%d", *year)
}
