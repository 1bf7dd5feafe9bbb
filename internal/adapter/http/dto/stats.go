package dto

type TaskStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"inProgress"`
	Pending        int     `json:"pending"`
	Blocked        int     `json:"blocked"`
	Overdue        int     `json:"overdue"`
	DueToday       int     `json:"dueToday"`
	CompletionRate float64 `json:"completionRate"`
	OverdueRate    float64 `json:"overdueRate"`
}

type QuadrantStats struct {
	UrgentImportant           int `json:"urgentImportant"`
	ImportantNotUrgent        int `json:"importantNotUrgent"`
	UrgentNotImportant        int `json:"urgentNotImportant"`
	NeitherUrgentNorImportant int `json:"neitherUrgentNorImportant"`
}

type CategoryStat struct {
	CategoryID     uint64  `json:"categoryId"`
	CategoryName   string  `json:"categoryName"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"inProgress"`
	Blocked        int     `json:"blocked"`
	CompletionRate float64 `json:"completionRate"`
}

type ProjectStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Completed      int     `json:"completed"`
	Planning       int     `json:"planning"`
	OnHold         int     `json:"onHold"`
	Cancelled      int     `json:"cancelled"`
	CompletionRate float64 `json:"completionRate"`
}

type ProjectTaskStat struct {
	ProjectID       uint64  `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	ProjectStatus   string  `json:"projectStatus"`
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	InProgressTasks int     `json:"inProgressTasks"`
	PendingTasks    int     `json:"pendingTasks"`
	BlockedTasks    int     `json:"blockedTasks"`
	OverdueTasks    int     `json:"overdueTasks"`
	CompletionRate  float64 `json:"completionRate"`
	Progress        float64 `json:"progress"`
}

type TimeSeriesPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type HeatmapDay struct {
	Date             string `json:"date"`
	Created          int    `json:"created"`
	Completed        int    `json:"completed"`
	SubtaskCreated   int    `json:"subtaskCreated"`
	SubtaskCompleted int    `json:"subtaskCompleted"`
}

type TaskDuration struct {
	TaskID       uint64  `json:"taskId"`
	TaskTitle    string  `json:"taskTitle"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate"`
	DurationDays int     `json:"durationDays"`
	Status       string  `json:"status"`
	ProjectName  *string `json:"projectName,omitempty"`
}

// StatsQuery carries the optional query-string parameters of the stats endpoints.
type StatsQuery struct {
	Period string `form:"period"`
	Date   string `form:"date"`
	Year   string `form:"year"`
	Limit  string `form:"limit"`
}
