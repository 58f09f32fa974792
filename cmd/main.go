// Command podium is the competition leaderboard CLI: the admin loads ground
// truth, teams submit prediction CSVs, and the board renders ranked by the
// selected metric. All state lives in a file-backed key-value store so the
// board survives between invocations.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/podium/internal/adapters/persistence"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/auth"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}

	svc, err := buildService(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to start engine: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := newRootCmd(svc)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// buildService wires the persistence store, admin gate, board, and service
// facade from configuration, then hydrates persisted state.
func buildService(ctx context.Context, cfg *config.Config) (*app.Service, error) {
	kv, err := persistence.NewFileKV(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	bridge := persistence.NewBridge(kv)

	svc := app.New(
		app.WithLogger(logger.Get()),
		app.WithBridge(bridge),
		app.WithGate(auth.NewGate(bridge, auth.WithCredentials(cfg.AdminUser, cfg.AdminPass))),
		app.WithStore(repository.NewBoard(repository.WithSelectedMetric(cfg.DefaultMetric))),
		app.WithDefaultMetric(cfg.DefaultMetric),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// newRootCmd assembles the command tree.
func newRootCmd(svc *app.Service) *cobra.Command {
	root := &cobra.Command{
		Use:           "podium",
		Short:         "Leaderboard for a data-analysis competition.",
		Long:          "Podium scores prediction CSVs against admin-provided ground truth and keeps a ranked board, one live submission per team.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(svc),
		newLogoutCmd(svc),
		newTruthCmd(svc),
		newSubmitCmd(svc),
		newMetricCmd(svc),
		newBoardCmd(svc),
		newStatsCmd(svc),
	)
	return root
}
