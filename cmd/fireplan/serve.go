package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/fireplan/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(a *app) *cobra.Command {
	var (
		address string
		noStore bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if address == "" {
				address = a.settings.Server.Address
			}

			opts := server.Options{
				Logger:  a.logger,
				Engine:  a.engine(),
				Version: version,
			}
			if !noStore {
				s, err := a.openStore(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := s.Close(); err != nil {
						a.logger.Warn("failed to close profile store", zap.Error(err))
					}
				}()
				opts.Store = s
			}

			return server.Run(ctx, address, server.NewHandler(opts), a.logger)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Listen address (default from settings)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Disable the profile routes")
	return cmd
}
