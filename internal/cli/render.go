package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"taskstats/internal/core/domain"
)

func newTable(out io.Writer, title string, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false
	if title != "" {
		t.SetTitle(title)
	}

	row := make(table.Row, 0, len(header))
	for _, h := range header {
		row = append(row, text.FgGreen.Sprintf("%v", h))
	}
	t.AppendHeader(row)
	return t
}

func percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func coloredTaskStatus(status domain.TaskStatus) string {
	switch status {
	case domain.TaskStatusPending:
		return text.FgHiRed.Sprintf("%s", status)
	case domain.TaskStatusInProgress:
		return text.FgHiYellow.Sprintf("%s", status)
	case domain.TaskStatusBlocked:
		return text.FgHiMagenta.Sprintf("%s", status)
	case domain.TaskStatusCompleted:
		return text.FgHiGreen.Sprintf("%s", status)
	default:
		return string(status)
	}
}

func renderTaskStats(out io.Writer, s domain.TaskStats) {
	t := newTable(out, "Tasks", "Metric", "Value")
	t.AppendRows([]table.Row{
		{"Total", s.Total},
		{"Completed", s.Completed},
		{"In progress", s.InProgress},
		{"Pending", s.Pending},
		{"Blocked", s.Blocked},
		{"Overdue", s.Overdue},
		{"Due today", s.DueToday},
		{"Completion rate", percent(s.CompletionRate)},
		{"Overdue rate", percent(s.OverdueRate)},
	})
	t.Render()
}

func renderQuadrants(out io.Writer, q domain.QuadrantStats) {
	t := newTable(out, "Quadrants", "", "Important", "Not important")
	t.AppendRows([]table.Row{
		{"Urgent", q.UrgentImportant, q.UrgentNotImportant},
		{"Not urgent", q.ImportantNotUrgent, q.NeitherUrgentNorImportant},
	})
	t.AppendFooter(table.Row{"Open tasks", q.Total(), ""})
	t.Render()
}

func renderCategories(out io.Writer, stats []domain.CategoryStat) {
	t := newTable(out, "Categories", "ID", "Category", "Total", "Completed", "In progress", "Pending", "Blocked", "Completion")
	for _, s := range stats {
		t.AppendRow(table.Row{s.CategoryID, s.CategoryName, s.Total, s.Completed, s.InProgress, s.Pending, s.Blocked, percent(s.CompletionRate)})
	}
	t.Render()
}

func renderProjects(out io.Writer, s domain.ProjectStats) {
	t := newTable(out, "Projects", "Metric", "Value")
	t.AppendRows([]table.Row{
		{"Total", s.Total},
		{"Active", s.Active},
		{"Completed", s.Completed},
		{"Planning", s.Planning},
		{"On hold", s.OnHold},
		{"Cancelled", s.Cancelled},
		{"Completion rate", fmt.Sprintf("%.2f", s.CompletionRate)},
	})
	t.Render()
}

func renderProjectTasks(out io.Writer, stats []domain.ProjectTaskStat) {
	t := newTable(out, "Project tasks", "ID", "Project", "Status", "Total", "Completed", "In progress", "Pending", "Blocked", "Overdue", "Progress")
	for _, s := range stats {
		t.AppendRow(table.Row{
			s.ProjectID, s.ProjectName, string(s.ProjectStatus),
			s.TotalTasks, s.CompletedTasks, s.InProgressTasks, s.PendingTasks, s.BlockedTasks, s.OverdueTasks,
			progressBar(s.Progress),
		})
	}
	t.Render()
}

func renderTimeSeries(out io.Writer, points []domain.TimeSeriesPoint) {
	t := newTable(out, "Activity", "Date", "Created", "Completed")
	created, completed := 0, 0
	for _, p := range points {
		t.AppendRow(table.Row{p.Date, p.Created, p.Completed})
		created += p.Created
		completed += p.Completed
	}
	t.AppendFooter(table.Row{"Total", created, completed})
	t.Render()
}

// renderHeatmap prints only active days; use --xlsx for the full year.
func renderHeatmap(out io.Writer, year int, days []domain.HeatmapDay) {
	t := newTable(out, fmt.Sprintf("Heatmap %d", year), "Date", "Created", "Completed", "Subtasks created", "Subtasks completed")
	var total domain.HeatmapDay
	for _, d := range days {
		total.Created += d.Created
		total.Completed += d.Completed
		total.SubtaskCreated += d.SubtaskCreated
		total.SubtaskCompleted += d.SubtaskCompleted
		if d.Created+d.Completed+d.SubtaskCreated+d.SubtaskCompleted == 0 {
			continue
		}
		t.AppendRow(table.Row{d.Date, d.Created, d.Completed, d.SubtaskCreated, d.SubtaskCompleted})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d days", len(days)), total.Created, total.Completed, total.SubtaskCreated, total.SubtaskCompleted})
	t.Render()
}

func renderDurations(out io.Writer, durations []domain.TaskDuration) {
	t := newTable(out, "Task durations", "#", "Task ID", "Task", "Project", "Status", "Start", "End", "Days")
	for i, d := range durations {
		project := ""
		if d.ProjectName != nil {
			project = *d.ProjectName
		}
		end := ""
		if d.EndDate != nil {
			end = d.EndDate.Format(time.DateOnly)
		}
		t.AppendRow(table.Row{i + 1, d.TaskID, d.TaskTitle, project, coloredTaskStatus(d.Status), d.StartDate.Format(time.DateOnly), end, d.DurationDays})
	}
	t.Render()
}

func progressBar(pct float64) string {
	const width = 10
	filled := int(pct / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("%s%s %s", strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent(pct))
}
