package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
)

// OptimizeAll solves every applicable target for the same year and compares results.
// Targets that cannot be solved are reported as recommendations rather than errors.
func (s *Solver) OptimizeAll(ctx context.Context, state *domain.AppState, targetYear int) (*MultiTargetResult, error) {
	if state == nil {
		return nil, &BreakEvenError{Operation: "optimize_all", Message: "state is required"}
	}

	mtResult := &MultiTargetResult{TargetYear: targetYear}
	var failures []string

	for _, target := range AllTargets {
		if target == TargetRepaymentForPayoff && state.UserSettings.IsRenting {
			continue
		}
		req := OptimizationRequest{
			State:         state,
			Target:        target,
			TargetYear:    targetYear,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures = append(failures, fmt.Sprintf("%s: %v", target, err))
			continue
		}
		mtResult.Results = append(mtResult.Results, *result)
	}

	if len(mtResult.Results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_all",
			Message:   fmt.Sprintf("no target could be solved for year %d", targetYear),
		}
	}

	mtResult.Recommendations = append(generateRecommendations(mtResult), failures...)
	return mtResult, nil
}

// generateRecommendations turns solved targets into plain-language advice
func generateRecommendations(result *MultiTargetResult) []string {
	var recommendations []string

	for _, r := range result.Results {
		switch r.Request.Target {
		case TargetRepaymentForPayoff:
			if !r.DiffFromBase.IsPositive() {
				recommendations = append(recommendations,
					fmt.Sprintf("Current repayments already clear the mortgage by year %d", result.TargetYear))
				continue
			}
			recommendations = append(recommendations,
				fmt.Sprintf("Repay $%s per %s ($%s more) to own the home outright by year %d",
					r.OptimalValue.StringFixed(2), r.RepaymentFreq, r.DiffFromBase.StringFixed(2), result.TargetYear))
		case TargetSurplusForFire:
			if !r.DiffFromBase.IsPositive() {
				recommendations = append(recommendations,
					fmt.Sprintf("Current surplus already reaches FIRE by year %d", result.TargetYear))
				continue
			}
			recommendations = append(recommendations,
				fmt.Sprintf("Save $%s a year ($%s more) to reach FIRE by year %d",
					r.OptimalValue.StringFixed(0), r.DiffFromBase.StringFixed(0), result.TargetYear))
		}
	}

	return recommendations
}
