package mapper_test

import (
	"testing"
	"time"

	"taskstats/internal/adapter/http/mapper"
	"taskstats/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankDurations(t *testing.T) {
	in := []domain.TaskDuration{
		{TaskID: 3, DurationDays: 2},
		{TaskID: 1, DurationDays: 9},
		{TaskID: 2, DurationDays: 2},
		{TaskID: 4, DurationDays: 5},
	}

	ranked := mapper.RankDurations(in, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, []uint64{1, 4, 2}, []uint64{ranked[0].TaskID, ranked[1].TaskID, ranked[2].TaskID})
	assert.Equal(t, uint64(3), in[0].TaskID)

	assert.Len(t, mapper.RankDurations(in, 0), 4)
}

func TestToTaskDurations(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	project := "Launch"

	items := mapper.ToTaskDurations([]domain.TaskDuration{
		{TaskID: 1, TaskTitle: "a", StartDate: start, EndDate: &start, DurationDays: 1, Status: domain.TaskStatusCompleted, ProjectName: &project},
		{TaskID: 2, TaskTitle: "b", StartDate: start, DurationDays: 1, Status: domain.TaskStatusPending},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "2024-06-01T10:00:00Z", items[0].StartDate)
	assert.Equal(t, "2024-06-01T10:00:00Z", *items[0].EndDate)
	assert.Equal(t, "completed", items[0].Status)
	assert.Equal(t, "Launch", *items[0].ProjectName)
	assert.Nil(t, items[1].EndDate)
	assert.Nil(t, items[1].ProjectName)
}

func TestToProjectTaskStats_StatusString(t *testing.T) {
	items := mapper.ToProjectTaskStats([]domain.ProjectTaskStat{{ProjectID: 1, ProjectStatus: domain.ProjectStatusOnHold, Progress: 50, CompletionRate: 50}})
	require.Len(t, items, 1)
	assert.Equal(t, "on-hold", items[0].ProjectStatus)
	assert.Equal(t, items[0].CompletionRate, items[0].Progress)
}

func TestToHeatmap_EmptyIsNonNil(t *testing.T) {
	assert.NotNil(t, mapper.ToHeatmap(nil))
	assert.NotNil(t, mapper.ToTimeSeries(nil))
}
