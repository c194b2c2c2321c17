package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func calculateCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "calculate [state-file]",
		Short: "Calculate income, cash flow, mortgage and net worth for a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %s", format, strings.Join(output.AvailableFormats(), ", "))
			}

			state, err := a.loadState(args[0])
			if err != nil {
				return err
			}
			report := a.engine().Run(state)

			data, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, yaml, csv, html)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [state-file]",
		Short: "Validate a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadState(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s is valid\n", args[0])
			return nil
		},
	}
}

func initCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [state-file]",
		Short: "Write the sample household snapshot to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.NewInputParser().SaveToFile(domain.DefaultState(), path); err != nil {
				return err
			}
			a.logger.Info("wrote sample snapshot", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample snapshot to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
