package models

import (
	"strings"
	"time"
)

// DashboardFilter selects which tasks the dashboard keeps.
type DashboardFilter string

const (
	// FilterNone keeps every task.
	FilterNone DashboardFilter = ""

	// FilterToday keeps tasks due today.
	FilterToday DashboardFilter = "today"

	// FilterThreeDays keeps tasks due within three days, overdue ones
	// included: it is an upper bound only.
	FilterThreeDays DashboardFilter = "3days"

	// FilterOverdue keeps tasks whose due date has passed.
	FilterOverdue DashboardFilter = "overdue"
)

// TimelineDays is the number of days covered by the dashboard timeline,
// today included.
const TimelineDays = 7

// ParseDashboardFilter maps a query-string value to a filter. Unknown values
// mean no filter.
func ParseDashboardFilter(s string) DashboardFilter {
	switch f := DashboardFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterToday, FilterThreeDays, FilterOverdue:
		return f
	default:
		return FilterNone
	}
}

// DashboardQuery carries the dashboard request parameters.
type DashboardQuery struct {
	Search string
	Filter DashboardFilter
}

// Task is the request-scoped join of a schedule entry with the display
// attributes of its plant. Tasks are never persisted.
type Task struct {
	ScheduleID string    `json:"schedule_id"`
	PlantID    string    `json:"plant_id"`
	PlantName  string    `json:"plant_name"`
	PlantImage string    `json:"plant_image"`
	Activity   string    `json:"activity"`
	Frequency  int       `json:"frequency"`
	Due        time.Time `json:"due"`

	// DeltaDays is the signed number of calendar days between today and
	// the due date. Negative values mean the task is overdue.
	DeltaDays int `json:"delta_days"`
}

// TimelineDay is a single bar of the dashboard timeline.
type TimelineDay struct {
	Date       time.Time `json:"date"`
	TasksCount int       `json:"tasks_count"`
}

// Dashboard is the aggregated view over every plant's schedules.
type Dashboard struct {
	Tasks        []Task          `json:"tasks"`
	Total        int             `json:"total"`
	TodayCount   int             `json:"today_count"`
	OverdueCount int             `json:"overdue_count"`
	Timeline     []TimelineDay   `json:"timeline"`
	Search       string          `json:"search"`
	Filter       DashboardFilter `json:"filter"`
	Now          time.Time       `json:"now"`
}
