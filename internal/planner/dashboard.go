package planner

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

// ComputeDashboard joins every plant with its schedule entries and builds the
// dashboard as seen at now.
//
// schedules maps a plant ID to that plant's entries; entries of plants that
// are not in plants are ignored. Entries whose due date is missing or cannot
// be resolved are dropped silently. search is matched case-insensitively
// against the plant name and the activity label. All counters and the
// timeline are computed after search and filter were applied.
func ComputeDashboard(
	plants []models.Plant,
	schedules map[string][]models.ScheduleEntry,
	now time.Time,
	search string,
	filter models.DashboardFilter,
) models.Dashboard {
	loc := now.Location()
	needle := strings.ToLower(search)

	tasks := make([]models.Task, 0)
	for _, plant := range plants {
		for _, entry := range schedules[plant.ID] {
			due, ok := entry.NextDue.Resolve(loc)
			if !ok {
				continue
			}

			delta := DaysBetween(now, due)

			if needle != "" && !matchesSearch(needle, plant.Name, entry.Activity) {
				continue
			}
			if !matchesFilter(filter, delta) {
				continue
			}

			tasks = append(tasks, models.Task{
				ScheduleID: entry.ID,
				PlantID:    plant.ID,
				PlantName:  plant.Name,
				PlantImage: plant.Image,
				Activity:   entry.Activity,
				Frequency:  entry.Frequency,
				Due:        due,
				DeltaDays:  delta,
			})
		}
	}

	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		return a.Due.Compare(b.Due)
	})

	dashboard := models.Dashboard{
		Tasks:    tasks,
		Total:    len(tasks),
		Timeline: buildTimeline(tasks, now),
		Search:   search,
		Filter:   filter,
		Now:      now,
	}
	for _, task := range tasks {
		switch {
		case task.DeltaDays == 0:
			dashboard.TodayCount++
		case task.DeltaDays < 0:
			dashboard.OverdueCount++
		}
	}

	return dashboard
}

// DaysBetween returns the signed number of calendar days from the date of
// from to the date of to. Both instants are compared in from's location.
func DaysBetween(from, to time.Time) int {
	to = to.In(from.Location())
	return int(civilDate(to).Sub(civilDate(from)) / day)
}

// civilDate maps the calendar date of t to midnight UTC so that date
// differences are not skewed by DST transitions.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func matchesSearch(needle, plantName, activity string) bool {
	return strings.Contains(strings.ToLower(plantName), needle) ||
		strings.Contains(strings.ToLower(activity), needle)
}

// matchesFilter applies the dashboard filter to a day offset. FilterThreeDays
// is an upper bound only and keeps overdue tasks too.
func matchesFilter(filter models.DashboardFilter, delta int) bool {
	switch filter {
	case models.FilterToday:
		return delta == 0
	case models.FilterThreeDays:
		return delta <= 3
	case models.FilterOverdue:
		return delta < 0
	default:
		return true
	}
}

func buildTimeline(tasks []models.Task, now time.Time) []models.TimelineDay {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	timeline := make([]models.TimelineDay, models.TimelineDays)
	for i := range timeline {
		timeline[i].Date = today.AddDate(0, 0, i)
	}

	for _, task := range tasks {
		if task.DeltaDays >= 0 && task.DeltaDays < models.TimelineDays {
			timeline[task.DeltaDays].TasksCount++
		}
	}

	return timeline
}
