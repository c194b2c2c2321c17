package main

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// sensitivityUnits maps each sweepable parameter to how its values print
var sensitivityUnits = map[string]string{
	"interest_rate":   "percent",
	"asset_growth":    "percent",
	"property_growth": "percent",
	"swr":             "percent",
	"surplus":         "dollars",
}

func sensitivityCmd(a *app) *cobra.Command {
	var (
		param    string
		minValue string
		maxValue string
		steps    int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "sensitivity [state-file]",
		Short: "Sweep one parameter and report how the plan responds",
		Long: `Sweep one parameter from --min to --max and report the FIRE year, payoff
year and final net worth at each step.

Parameters: interest_rate, asset_growth, property_growth, swr (percent) and
surplus (dollars per year).

Example:
  fireplan sensitivity household.yaml --param interest_rate --min 4 --max 8 --steps 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, ok := sensitivityUnits[param]
			if !ok {
				return fmt.Errorf("unknown sensitivity parameter %q", param)
			}
			lo, err := decimal.NewFromString(minValue)
			if err != nil {
				return fmt.Errorf("invalid --min %q: %w", minValue, err)
			}
			hi, err := decimal.NewFromString(maxValue)
			if err != nil {
				return fmt.Errorf("invalid --max %q: %w", maxValue, err)
			}
			if hi.LessThan(lo) {
				return fmt.Errorf("--max must not be below --min")
			}
			if steps < 2 {
				return fmt.Errorf("--steps must be at least 2")
			}

			state, err := a.loadState(args[0])
			if err != nil {
				return err
			}

			analysis, err := calculation.NewSensitivityAnalyzer(a.engine()).AnalyzeSingleParameter(cmd.Context(), state, domain.SensitivityParameter{
				Name:     param,
				MinValue: lo,
				MaxValue: hi,
				Steps:    steps,
				Unit:     unit,
			})
			if err != nil {
				return err
			}

			out, err := output.NewSensitivityFormatter(format).FormatSensitivityAnalysis(analysis)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&param, "param", "interest_rate", "Parameter to sweep")
	cmd.Flags().StringVar(&minValue, "min", "", "Lowest value of the sweep")
	cmd.Flags().StringVar(&maxValue, "max", "", "Highest value of the sweep")
	cmd.Flags().IntVar(&steps, "steps", 5, "Number of values, including both ends")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, csv, json)")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}
