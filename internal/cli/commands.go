package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"taskstats/internal/adapter/export"
	"taskstats/internal/adapter/http/mapper"
	"taskstats/internal/adapter/http/validation"
	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
)

type runner func(fn func(ctx context.Context, svc ports.StatsService, out io.Writer) error) func(*cobra.Command, []string) error

func newTasksCommand(opts *options, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "Main task counts and rates",
		Aliases: []string{"t"},
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			stats, err := svc.TaskStats(ctx, opts.userID, validation.Period(opts.period, domain.PeriodWeek))
			if err != nil {
				return err
			}
			renderTaskStats(out, stats)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&opts.period, "period", "p", "week", "day, week or month")
	return cmd
}

func newQuadrantsCommand(opts *options, run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "quadrants",
		Short:   "Open main tasks on the urgency/importance matrix",
		Aliases: []string{"q"},
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			stats, err := svc.QuadrantStats(ctx, opts.userID)
			if err != nil {
				return err
			}
			renderQuadrants(out, stats)
			return nil
		}),
	}
}

func newCategoriesCommand(opts *options, run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "Main task counts per category",
		Aliases: []string{"c"},
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			stats, err := svc.CategoryStats(ctx, opts.userID)
			if err != nil {
				return err
			}
			renderCategories(out, stats)
			return nil
		}),
	}
}

func newProjectsCommand(opts *options, run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "Project counts by status",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			stats, err := svc.ProjectStats(ctx, opts.userID)
			if err != nil {
				return err
			}
			renderProjects(out, stats)
			return nil
		}),
	}
}

func newProjectTasksCommand(opts *options, run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "project-tasks",
		Short: "Main task progress per project",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			stats, err := svc.ProjectTaskStats(ctx, opts.userID)
			if err != nil {
				return err
			}
			renderProjectTasks(out, stats)
			return nil
		}),
	}
}

func newTimeSeriesCommand(opts *options, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeseries",
		Short:   "Tasks created and completed per day",
		Aliases: []string{"ts"},
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			points := svc.TimeSeries(ctx, opts.userID,
				validation.Period(opts.period, domain.PeriodWeek),
				validation.TargetDate(opts.date, svc.Now()),
			)
			renderTimeSeries(out, points)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&opts.period, "period", "p", "week", "day, week or month")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "reference day as yyyy-MM-dd (default today)")
	return cmd
}

func newHeatmapCommand(opts *options, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Daily activity over a year",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			year := validation.Year(opts.year, svc.Now())
			days := svc.YearHeatmap(ctx, opts.userID, year)
			if opts.xlsx != "" {
				workbook, err := export.HeatmapWorkbook(days)
				if err != nil {
					return err
				}
				return saveWorkbook(out, workbook, opts.xlsx)
			}
			renderHeatmap(out, year, days)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&opts.year, "year", "y", "", "calendar year (default current year)")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write the full heatmap to this xlsx file instead of printing")
	return cmd
}

func newDurationsCommand(opts *options, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "durations",
		Short:   "Longest running main tasks of a year",
		Aliases: []string{"d"},
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, svc ports.StatsService, out io.Writer) error {
			durations, err := svc.DurationRanking(ctx, opts.userID, validation.Year(opts.year, svc.Now()))
			if err != nil {
				return err
			}
			ranked := mapper.RankDurations(durations, validation.Limit(opts.limit))
			if opts.xlsx != "" {
				workbook, err := export.DurationWorkbook(ranked)
				if err != nil {
					return err
				}
				return saveWorkbook(out, workbook, opts.xlsx)
			}
			renderDurations(out, ranked)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&opts.year, "year", "y", "", "calendar year (default current year)")
	cmd.Flags().StringVarP(&opts.limit, "limit", "n", "10", "number of tasks to show, 0 for all")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write the ranking to this xlsx file instead of printing")
	return cmd
}

func saveWorkbook(out io.Writer, workbook *export.Workbook, path string) error {
	defer workbook.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := workbook.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(out, "Saved %s\n", path)
	return nil
}
