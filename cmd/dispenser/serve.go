package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
	"github.com/dmitrymomot/dispenser/pkg/httpapi"
	"github.com/dmitrymomot/dispenser/pkg/httpserver"
	"github.com/dmitrymomot/dispenser/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		inventory int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one dispenser over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stock := a.cfg.Inventory
			if cmd.Flags().Changed("inventory") {
				stock = inventory
			}

			m, err := dispenser.New(stock,
				dispenser.WithLogger(a.log),
				dispenser.WithOutput(cmd.OutOrStdout()),
				dispenser.WithID(a.cfg.MachineID),
			)
			if err != nil {
				return err
			}

			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}

			a.log.InfoContext(cmd.Context(), "dispenser ready",
				logger.MachineID(m.ID()),
				logger.Inventory(m.Inventory()),
			)

			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), httpapi.New(m, httpapi.WithLogger(a.log)).Handle())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	cmd.Flags().IntVarP(&inventory, "inventory", "n", 0, "Starting inventory, overrides DISPENSER_INVENTORY")

	return cmd
}
