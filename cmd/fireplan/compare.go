package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/compare"
	"github.com/rgehrsitz/fireplan/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var (
		alternatives  []string
		templates     string
		baseName      string
		format        string
		listTemplates bool
	)
	cmd := &cobra.Command{
		Use:   "compare [state-file]",
		Short: "Compare the snapshot against alternative plans",
		Long: `Compare the snapshot against alternatives built from transforms or templates.

Examples:
  fireplan compare household.yaml --alt "extra=extra_repayment:amount=500"
  fireplan compare household.yaml --alt "lean=set_retirement_cost:amount=30000;set_swr:rate=3.5"
  fireplan compare household.yaml --with rate_rise_1,rigorous --format csv`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := compare.NewCompareEngine(a.engine())
			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(engine.TemplateRegistry))
				return nil
			}

			var scenarios []compare.Scenario
			if templates != "" {
				fromTemplates, err := engine.TemplateScenarios(transform.ParseTemplateList(templates))
				if err != nil {
					return err
				}
				scenarios = append(scenarios, fromTemplates...)
			}
			for _, alt := range alternatives {
				sc, err := engine.ParseAlternative(alt)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, sc)
			}
			if len(scenarios) == 0 {
				return fmt.Errorf("nothing to compare, pass --alt or --with")
			}

			state, err := a.loadState(args[0])
			if err != nil {
				return err
			}
			set, err := engine.Compare(cmd.Context(), state, scenarios, compare.CompareOptions{
				BaseScenarioName: baseName,
				ConfigPath:       args[0],
			})
			if err != nil {
				return err
			}

			out, err := formatComparison(set, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&alternatives, "alt", nil, "Alternative as name=transform:key=value;transform:key=value (repeatable)")
	cmd.Flags().StringVar(&templates, "with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringVar(&baseName, "base", "base", "Name shown for the unmodified snapshot")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List the built-in templates")
	return cmd
}

func formatComparison(set *compare.ComparisonSet, format string) (string, error) {
	switch strings.ToLower(format) {
	case "table", "console":
		return (&compare.TableFormatter{}).Format(set), nil
	case "compact":
		return (&compare.TableFormatter{}).FormatCompact(set) + "\n", nil
	case "csv":
		return (&compare.CSVFormatter{}).Format(set)
	case "json":
		return (&compare.JSONFormatter{Pretty: true}).Format(set)
	default:
		return "", fmt.Errorf("unknown format %q, expected table, compact, csv or json", format)
	}
}
