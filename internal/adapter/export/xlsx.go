// Package export renders stats view models as xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"taskstats/internal/core/domain"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	heatmapSheet  = "Heatmap"
	durationSheet = "Durations"
)

var (
	heatmapHeader  = []any{"Date", "Created", "Completed", "Subtasks created", "Subtasks completed"}
	durationHeader = []any{"Task ID", "Task", "Project", "Status", "Start", "End", "Days"}
)

// Workbook wraps an excelize file with the header style shared by every sheet.
type Workbook struct {
	file        *excelize.File
	headerStyle int
}

func newWorkbook(sheet string) (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1565C0"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	return &Workbook{file: f, headerStyle: style}, nil
}

func (w *Workbook) writeHeader(sheet string, header []any, widths []float64) error {
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, "A1", last, w.headerStyle); err != nil {
		return err
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.file.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return w.file.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// File exposes the underlying workbook, mainly for reading back in tests.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// HeatmapWorkbook writes one row per heatmap day below a header row.
func HeatmapWorkbook(days []domain.HeatmapDay) (*Workbook, error) {
	w, err := newWorkbook(heatmapSheet)
	if err != nil {
		return nil, err
	}
	if err := w.writeHeader(heatmapSheet, heatmapHeader, []float64{14, 10, 12, 18, 20}); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("write heatmap header: %w", err)
	}

	for i, day := range days {
		row := []any{day.Date, day.Created, day.Completed, day.SubtaskCreated, day.SubtaskCompleted}
		if err := w.file.SetSheetRow(heatmapSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("write heatmap row %s: %w", day.Date, err)
		}
	}
	return w, nil
}

// DurationWorkbook writes the ranking in the order given.
func DurationWorkbook(durations []domain.TaskDuration) (*Workbook, error) {
	w, err := newWorkbook(durationSheet)
	if err != nil {
		return nil, err
	}
	if err := w.writeHeader(durationSheet, durationHeader, []float64{10, 40, 24, 14, 20, 20, 8}); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("write duration header: %w", err)
	}

	for i, d := range durations {
		project := ""
		if d.ProjectName != nil {
			project = *d.ProjectName
		}
		end := ""
		if d.EndDate != nil {
			end = d.EndDate.Format(time.DateTime)
		}
		row := []any{d.TaskID, d.TaskTitle, project, string(d.Status), d.StartDate.Format(time.DateTime), end, d.DurationDays}
		if err := w.file.SetSheetRow(durationSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("write duration row %d: %w", d.TaskID, err)
		}
	}
	return w, nil
}
