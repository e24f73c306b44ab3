package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
	"github.com/dmitrymomot/dispenser/pkg/logger"
	"github.com/dmitrymomot/dispenser/pkg/scenario"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		builtin   string
		steps     string
		inventory int
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Play a scenario and print the transcript",
		Long: `Run plays a scripted session against a fresh machine and prints every
diagnostic to stdout. The script comes from a YAML file, from --steps, or
from a bundled scenario (--builtin, "tissue" by default).

Exits non-zero when the scenario's expectation is not met.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   scenario.Scenario
				err error
			)
			switch {
			case len(args) == 1:
				if cmd.Flags().Changed("builtin") || cmd.Flags().Changed("steps") {
					return errors.New("a scenario file cannot be combined with --builtin or --steps")
				}
				s, err = scenario.Load(args[0])
			case steps != "":
				s, err = scenario.FromSteps("steps", a.cfg.Inventory, steps)
			default:
				s, err = scenario.Builtin(builtin)
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("inventory") {
				// The expectation was written for the scripted stock.
				s.Inventory = inventory
				s.Expect = nil
			}

			opts := []dispenser.Option{dispenser.WithLogger(a.log)}
			if a.cfg.MachineID != "" {
				opts = append(opts, dispenser.WithID(a.cfg.MachineID))
			}

			res, err := scenario.Run(cmd.Context(), s, cmd.OutOrStdout(), opts...)
			a.log.InfoContext(cmd.Context(), "scenario finished",
				logger.Scenario(s.Name),
				logger.Inventory(res.Final.Inventory),
				slog.Int("dispensed", res.Dispensed()),
				logger.Error(err),
			)
			return err
		},
	}

	cmd.Flags().StringVarP(&builtin, "builtin", "b", "tissue", "Bundled scenario to play")
	cmd.Flags().StringVarP(&steps, "steps", "s", "", "Comma separated steps, e.g. insert,crank,inventory")
	cmd.Flags().IntVarP(&inventory, "inventory", "n", 0, "Override the starting inventory and skip the expectation check")
	cmd.MarkFlagsMutuallyExclusive("builtin", "steps")

	return cmd
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List bundled scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range scenario.BuiltinNames() {
				s, err := scenario.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Name, s.Inventory, firstLine(s.Description))
			}
			return tw.Flush()
		},
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
