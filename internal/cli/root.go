// Package cli implements statsctl, a terminal front end over the stats service.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "taskstats/internal/adapter/db"
	appservice "taskstats/internal/app/service"
	"taskstats/internal/config"
	"taskstats/internal/core/ports"
)

// ServiceFactory opens the stats service and returns a function releasing its resources.
type ServiceFactory func(ctx context.Context) (ports.StatsService, func() error, error)

type options struct {
	userID uint64
	period string
	date   string
	year   string
	limit  string
	xlsx   string
}

// NewRootCommand wires every statsctl sub-command. Output goes to out.
func NewRootCommand(factory ServiceFactory, out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "statsctl",
		Short:         "Print task statistics for a user",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().Uint64VarP(&opts.userID, "user", "u", 0, "user id whose tasks are aggregated")
	_ = root.MarkPersistentFlagRequired("user")

	run := func(fn func(ctx context.Context, svc ports.StatsService, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if opts.userID == 0 {
				return fmt.Errorf("--user must be a positive id")
			}
			svc, closeFn, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := closeFn(); err != nil {
					zap.L().Warn("failed to release stats service", zap.Error(err))
				}
			}()
			return fn(cmd.Context(), svc, cmd.OutOrStdout())
		}
	}

	root.AddCommand(
		newTasksCommand(opts, run),
		newQuadrantsCommand(opts, run),
		newCategoriesCommand(opts, run),
		newProjectsCommand(opts, run),
		newProjectTasksCommand(opts, run),
		newTimeSeriesCommand(opts, run),
		newHeatmapCommand(opts, run),
		newDurationsCommand(opts, run),
	)
	return root
}

// DatabaseFactory builds the stats service on top of the configured database.
func DatabaseFactory(cfg *config.Config) ServiceFactory {
	return func(ctx context.Context) (ports.StatsService, func() error, error) {
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to %s: %w", cfg.DbDriver, err)
		}

		svc := appservice.NewStatsService(
			dbadapter.NewTaskRepository(db),
			dbadapter.NewProjectRepository(db),
			dbadapter.NewCategoryRepository(db),
			appservice.WithLocation(cfg.StatsLocation),
			appservice.WithWeekStart(cfg.WeekStart),
		)
		return svc, db.Close, nil
	}
}
