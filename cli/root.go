// Package cli wires the devflow commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/e-ogugua/devflow-cli/catalog"
	"github.com/e-ogugua/devflow-cli/config"
	"github.com/e-ogugua/devflow-cli/logging"
	"github.com/e-ogugua/devflow-cli/simulator"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
)

type app struct {
	cfg     config.Config
	catalog *catalog.Catalog
	sim     *simulator.Simulator
	logger  *slog.Logger
	close   func() error
}

// setup loads config, logging and the catalog for one command invocation.
func setup(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("catalog loaded", "tools", cat.Len(), "path", cfg.Catalog)

	sim := simulator.New(
		simulator.WithDelay(cfg.StepDelay),
		simulator.WithLogger(logger),
	)
	return &app{cfg: cfg, catalog: cat, sim: sim, logger: logger, close: closeLog}, nil
}

// NewRootCommand builds the devflow command tree. Without a subcommand it
// opens the dashboard.
func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "devflow",
		Short: "DevFlow CLI - Professional Developer Tools Suite",
		Long: `DevFlow shows a catalog of developer tools and plays a simulated
terminal log when one is run. Nothing is executed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(configPath)
			if err != nil {
				return err
			}
			defer a.close()
			return runDashboard(cmd.Context(), a)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	cmd.AddCommand(newListCommand(&configPath))
	cmd.AddCommand(newRunCommand(&configPath))
	cmd.AddCommand(newConfigCommand(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionString())
		},
	})
	return cmd
}

func VersionString() string {
	return fmt.Sprintf("devflow %s (commit: %s)", Version, Commit)
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
