package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dispenser/pkg/config"
	"github.com/dmitrymomot/dispenser/pkg/httpapi"
)

// app carries what the root command prepares for its subcommands.
type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var envFiles []string

	root := &cobra.Command{
		Use:           "dispenser",
		Short:         "Payment-gated dispenser state machine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}
			if err := config.Load(&a.cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := newLogger(a.cfg, cmd.ErrOrStderr(), httpapi.RequestIDExtractor())
			if err != nil {
				return fmt.Errorf("configure logger: %w", err)
			}
			a.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Extra .env files to load before reading configuration")

	root.AddCommand(newRunCmd(a), newScenariosCmd(), newServeCmd(a))
	return root
}
