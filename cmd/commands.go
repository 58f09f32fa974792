package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/auth"
	"github.com/okian/podium/internal/domain/metric"
	"github.com/okian/podium/pkg/metrics"
)

// newLoginCmd opens an admin session.
func newLoginCmd(svc *app.Service) *cobra.Command {
	var user, pass string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as administrator.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := svc.Login(cmd.Context(), user, pass); err != nil {
				return err
			}
			cmd.Println("logged in as administrator")
			return nil
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "admin username")
	cmd.Flags().StringVarP(&pass, "password", "p", "", "admin password")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// newLogoutCmd closes the admin session.
func newLogoutCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the administrator session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := svc.Logout(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("logged out")
			return nil
		},
	}
}

// newTruthCmd replaces the ground truth from a CSV file. Admin only; every
// stored submission is cleared since it no longer has a valid basis.
func newTruthCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "truth <file.csv>",
		Short: "Upload the ground truth file (admin only). Clears the board.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := svc.IsAdmin(cmd.Context())
			if err != nil {
				return err
			}
			if !admin {
				return auth.ErrNotAdmin
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			count, err := svc.SetGroundTruth(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			cmd.Printf("ground truth set (%d samples); submission board cleared\n", count)
			return nil
		},
	}
}

// newSubmitCmd scores one or more prediction files. Files are processed
// sequentially and independently: a bad file does not roll back an earlier
// successful one.
func newSubmitCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <file.csv> [more.csv ...]",
		Short: "Submit prediction files; the filename is the team name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err == nil {
					err = svc.Submit(cmd.Context(), string(data), filepath.Base(path))
				}
				if err != nil {
					failed++
					cmd.PrintErrf("%s: %v\n", path, err)
					continue
				}
				cmd.Printf("%s: scored\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d submissions failed", failed, len(args))
			}
			return nil
		},
	}
}

// newMetricCmd shows or switches the ranking metric.
func newMetricCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "metric [id]",
		Short: "Show available metrics, or select the one driving ranking.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := svc.SelectMetric(cmd.Context(), args[0]); err != nil {
					return err
				}
				cmd.Printf("ranking by %s\n", args[0])
				return nil
			}

			selected := svc.SelectedMetric(cmd.Context())
			for _, def := range metric.All() {
				marker := " "
				if def.ID == selected {
					marker = "*"
				}
				direction := "lower is better"
				if def.HigherIsBetter {
					direction = "higher is better"
				}
				cmd.Printf("%s %-10s %-10s (%s)\n", marker, def.ID, def.Name, direction)
			}
			return nil
		},
	}
}

// newBoardCmd renders the ranked table.
func newBoardCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the leaderboard under the selected metric.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderBoard(cmd.Context(), cmd.OutOrStdout(), svc)
		},
	}
}

// newStatsCmd prints engine stats and the Prometheus metric dump.
func newStatsCmd(svc *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show engine statistics and metrics.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for k, v := range svc.Stats(cmd.Context()) {
				cmd.Printf("%s: %v\n", k, v)
			}
			dump, err := metrics.Dump()
			if err != nil {
				return err
			}
			cmd.Println(dump)
			return nil
		},
	}
}
