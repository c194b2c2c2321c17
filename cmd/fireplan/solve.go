package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/breakeven"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	var (
		target     string
		targetYear int
		format     string
		tolerance  float64
		maxIter    int
	)
	cmd := &cobra.Command{
		Use:   "solve [state-file]",
		Short: "Find the repayment or surplus needed to hit a target year",
		Long: `Binary-search the smallest repayment that clears the mortgage by --year
(repayment_for_payoff) or the smallest annual surplus that reaches the FIRE
target by --year (surplus_for_fire). The default "all" solves every target
that applies to the snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q, expected table or json", format)
			}

			state, err := a.loadState(args[0])
			if err != nil {
				return err
			}

			opts := breakeven.DefaultSolverOptions()
			if maxIter > 0 {
				opts.MaxIterations = maxIter
			}
			if tolerance > 0 {
				opts.Tolerance = decimal.NewFromFloat(tolerance)
			}
			solver := breakeven.NewSolver(a.engine(), opts)

			if target == "all" {
				result, err := solver.OptimizeAll(cmd.Context(), state, targetYear)
				if err != nil {
					return err
				}
				return writeSolve(cmd, format,
					func() string { return (&breakeven.TableFormatter{}).FormatMulti(result) },
					func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).FormatMulti(result) })
			}

			result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
				State:      state,
				Target:     breakeven.OptimizationTarget(target),
				TargetYear: targetYear,
			})
			if err != nil {
				return err
			}
			return writeSolve(cmd, format,
				func() string { return (&breakeven.TableFormatter{}).Format(result) },
				func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).Format(result) })
		},
	}
	targets := make([]string, 0, len(breakeven.AllTargets)+1)
	for _, t := range breakeven.AllTargets {
		targets = append(targets, string(t))
	}
	targets = append(targets, "all")

	cmd.Flags().StringVar(&target, "target", "all", "Target to solve ("+strings.Join(targets, ", ")+")")
	cmd.Flags().IntVar(&targetYear, "year", 10, "Target year, counted from today")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Stop when the search interval is narrower than this many dollars")
	cmd.Flags().IntVar(&maxIter, "max-iterations", 0, "Maximum solver iterations")
	return cmd
}

func writeSolve(cmd *cobra.Command, format string, table func() string, toJSON func() (string, error)) error {
	if format == "json" {
		out, err := toJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), table())
	return nil
}
