package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/e-ogugua/devflow-cli/launcher"
	"github.com/spf13/cobra"
)

func newRunCommand(configPath *string) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "run <tool-id>",
		Short: "Play a tool's simulated run without the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if cmd.Flags().Changed("delay") {
				if delay <= 0 {
					return fmt.Errorf("delay must be positive, got %s", delay)
				}
				a.sim.SetDelay(delay)
			}

			tool, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			_, err = launcher.Run(ctx, a.sim, tool, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause before each step, e.g. 250ms (overrides config)")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
