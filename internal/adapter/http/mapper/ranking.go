package mapper

import (
	"sort"

	"taskstats/internal/core/domain"
)

// RankDurations sorts by duration, longest first, ties broken by task id, and
// keeps the first limit entries when limit is positive.
func RankDurations(durations []domain.TaskDuration, limit int) []domain.TaskDuration {
	ranked := make([]domain.TaskDuration, len(durations))
	copy(ranked, durations)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DurationDays != ranked[j].DurationDays {
			return ranked[i].DurationDays > ranked[j].DurationDays
		}
		return ranked[i].TaskID < ranked[j].TaskID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
