package planner

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func dueIn(days int) models.DueDate {
	return models.NativeDueDate(testNow.AddDate(0, 0, days))
}

func plantWith(id, name string, entries ...models.ScheduleEntry) (models.Plant, []models.ScheduleEntry) {
	for i := range entries {
		entries[i].PlantID = id
	}
	return models.Plant{ID: id, Name: name, Image: "uploads/" + id + ".jpg"}, entries
}

func snapshot(pairs ...any) ([]models.Plant, map[string][]models.ScheduleEntry) {
	plants := make([]models.Plant, 0)
	schedules := make(map[string][]models.ScheduleEntry)
	for i := 0; i < len(pairs); i += 2 {
		p := pairs[i].(models.Plant)
		plants = append(plants, p)
		schedules[p.ID] = pairs[i+1].([]models.ScheduleEntry)
	}
	return plants, schedules
}

func taskIDs(d models.Dashboard) []string {
	ids := make([]string, 0, len(d.Tasks))
	for _, task := range d.Tasks {
		ids = append(ids, task.ScheduleID)
	}
	return ids
}

// ── filters ──────────────────────────────────────────────────────────────────

func TestComputeDashboard_Filters(t *testing.T) {
	p, entries := plantWith("p1", "Monstera",
		models.ScheduleEntry{ID: "overdue-5", Activity: "repot", Frequency: 30, NextDue: dueIn(-5)},
		models.ScheduleEntry{ID: "overdue-1", Activity: "water", Frequency: 2, NextDue: dueIn(-1)},
		models.ScheduleEntry{ID: "today", Activity: "mist", Frequency: 1, NextDue: dueIn(0)},
		models.ScheduleEntry{ID: "in-3", Activity: "fertilize", Frequency: 14, NextDue: dueIn(3)},
		models.ScheduleEntry{ID: "in-4", Activity: "prune", Frequency: 60, NextDue: dueIn(4)},
	)
	plants, schedules := snapshot(p, entries)

	tests := []struct {
		name   string
		filter models.DashboardFilter
		want   []string
	}{
		{
			name:   "no filter keeps everything sorted by due date",
			filter: models.FilterNone,
			want:   []string{"overdue-5", "overdue-1", "today", "in-3", "in-4"},
		},
		{
			name:   "today keeps only delta zero",
			filter: models.FilterToday,
			want:   []string{"today"},
		},
		{
			name:   "3days is an upper bound and keeps overdue tasks",
			filter: models.FilterThreeDays,
			want:   []string{"overdue-5", "overdue-1", "today", "in-3"},
		},
		{
			name:   "overdue keeps only negative deltas",
			filter: models.FilterOverdue,
			want:   []string{"overdue-5", "overdue-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDashboard(plants, schedules, testNow, "", tt.filter)
			assert.Equal(t, tt.want, taskIDs(d))
			assert.Equal(t, len(tt.want), d.Total)
		})
	}
}

// TestComputeDashboard_OverdueScenario checks a task due two days ago is
// reported by the overdue filter only.
func TestComputeDashboard_OverdueScenario(t *testing.T) {
	p, entries := plantWith("p", "Calathea",
		models.ScheduleEntry{ID: "s", Activity: "water", Frequency: 7, NextDue: dueIn(-2)},
	)
	plants, schedules := snapshot(p, entries)

	overdue := ComputeDashboard(plants, schedules, testNow, "", models.FilterOverdue)
	require.Len(t, overdue.Tasks, 1)
	assert.Equal(t, "s", overdue.Tasks[0].ScheduleID)
	assert.Equal(t, -2, overdue.Tasks[0].DeltaDays)
	assert.GreaterOrEqual(t, overdue.OverdueCount, 1)

	today := ComputeDashboard(plants, schedules, testNow, "", models.FilterToday)
	assert.Empty(t, today.Tasks)
	assert.Zero(t, today.OverdueCount)
}

// ── search ───────────────────────────────────────────────────────────────────

func TestComputeDashboard_Search(t *testing.T) {
	p1, e1 := plantWith("p1", "Monstera Deliciosa",
		models.ScheduleEntry{ID: "a", Activity: "Water", Frequency: 3, NextDue: dueIn(1)},
	)
	p2, e2 := plantWith("p2", "Ficus",
		models.ScheduleEntry{ID: "b", Activity: "Fertilize", Frequency: 14, NextDue: dueIn(2)},
		models.ScheduleEntry{ID: "c", Frequency: 14, NextDue: dueIn(2)},
	)
	plants, schedules := snapshot(p1, e1, p2, e2)

	tests := []struct {
		search string
		want   []string
	}{
		{search: "monstera", want: []string{"a"}},
		{search: "FERTI", want: []string{"b"}},
		{search: "ficus", want: []string{"b", "c"}},
		{search: "cactus", want: []string{}},
		{search: "", want: []string{"a", "b", "c"}},
		{search: " ", want: []string{"a"}},
		{search: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			d := ComputeDashboard(plants, schedules, testNow, tt.search, models.FilterNone)
			assert.Equal(t, tt.want, taskIDs(d))
		})
	}
}

// ── due date resolution ──────────────────────────────────────────────────────

func TestComputeDashboard_SkipsUnresolvedDueDates(t *testing.T) {
	p, entries := plantWith("p", "Pothos",
		models.ScheduleEntry{ID: "missing", Activity: "water", Frequency: 3},
		models.ScheduleEntry{ID: "garbage", Activity: "water", Frequency: 3, NextDue: models.ISODueDate("soon")},
		models.ScheduleEntry{ID: "iso", Activity: "water", Frequency: 3, NextDue: models.ISODueDate("2024-01-11T08:00:00")},
		models.ScheduleEntry{ID: "native", Activity: "water", Frequency: 3, NextDue: dueIn(0)},
	)
	plants, schedules := snapshot(p, entries)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	assert.Equal(t, []string{"native", "iso"}, taskIDs(d))
	assert.Equal(t, 1, d.Tasks[1].DeltaDays)
}

func TestComputeDashboard_IgnoresSchedulesOfUnknownPlants(t *testing.T) {
	plants := []models.Plant{{ID: "p", Name: "Pothos"}}
	schedules := map[string][]models.ScheduleEntry{
		"ghost": {{ID: "x", Activity: "water", Frequency: 1, NextDue: dueIn(0)}},
	}

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	assert.Empty(t, d.Tasks)
	assert.NotNil(t, d.Tasks)
}

func TestComputeDashboard_JoinsPlantAttributes(t *testing.T) {
	p, entries := plantWith("p9", "Alocasia",
		models.ScheduleEntry{ID: "s", Activity: "wipe leaves", Frequency: 10, NextDue: dueIn(2)},
	)
	plants, schedules := snapshot(p, entries)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	require.Len(t, d.Tasks, 1)
	task := d.Tasks[0]
	assert.Equal(t, "p9", task.PlantID)
	assert.Equal(t, "Alocasia", task.PlantName)
	assert.Equal(t, "uploads/p9.jpg", task.PlantImage)
	assert.Equal(t, "wipe leaves", task.Activity)
	assert.Equal(t, 10, task.Frequency)
	assert.Equal(t, 2, task.DeltaDays)
}

// ── counters and timeline ────────────────────────────────────────────────────

func TestComputeDashboard_CountersAndTimeline(t *testing.T) {
	p, entries := plantWith("p", "Fern",
		models.ScheduleEntry{ID: "o", Activity: "a", Frequency: 1, NextDue: dueIn(-3)},
		models.ScheduleEntry{ID: "t1", Activity: "a", Frequency: 1, NextDue: dueIn(0)},
		models.ScheduleEntry{ID: "t2", Activity: "a", Frequency: 1, NextDue: models.NativeDueDate(testNow.Add(10 * time.Hour))},
		models.ScheduleEntry{ID: "d2", Activity: "a", Frequency: 1, NextDue: dueIn(2)},
		models.ScheduleEntry{ID: "d6", Activity: "a", Frequency: 1, NextDue: dueIn(6)},
		models.ScheduleEntry{ID: "d7", Activity: "a", Frequency: 1, NextDue: dueIn(7)},
	)
	plants, schedules := snapshot(p, entries)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	assert.Equal(t, 6, d.Total)
	assert.Equal(t, 2, d.TodayCount)
	assert.Equal(t, 1, d.OverdueCount)

	require.Len(t, d.Timeline, models.TimelineDays)
	counts := make([]int, 0, len(d.Timeline))
	sum := 0
	for i, day := range d.Timeline {
		assert.Equal(t, time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC), day.Date)
		counts = append(counts, day.TasksCount)
		sum += day.TasksCount
	}
	assert.Equal(t, []int{2, 0, 1, 0, 0, 0, 1}, counts)
	assert.LessOrEqual(t, sum, d.Total)
}

// TestComputeDashboard_TimelineSumEqualsTotal checks the timeline accounts
// for every task when all of them fall within the next seven days.
func TestComputeDashboard_TimelineSumEqualsTotal(t *testing.T) {
	p, entries := plantWith("p", "Fern",
		models.ScheduleEntry{ID: "a", Activity: "a", Frequency: 1, NextDue: dueIn(0)},
		models.ScheduleEntry{ID: "b", Activity: "a", Frequency: 1, NextDue: dueIn(3)},
		models.ScheduleEntry{ID: "c", Activity: "a", Frequency: 1, NextDue: dueIn(6)},
	)
	plants, schedules := snapshot(p, entries)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	sum := 0
	for _, day := range d.Timeline {
		sum += day.TasksCount
	}
	assert.Equal(t, d.Total, sum)
}

func TestComputeDashboard_TimelineFollowsFilter(t *testing.T) {
	p, entries := plantWith("p", "Fern",
		models.ScheduleEntry{ID: "a", Activity: "a", Frequency: 1, NextDue: dueIn(0)},
		models.ScheduleEntry{ID: "b", Activity: "a", Frequency: 1, NextDue: dueIn(1)},
	)
	plants, schedules := snapshot(p, entries)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterToday)

	assert.Equal(t, 1, d.Timeline[0].TasksCount)
	assert.Equal(t, 0, d.Timeline[1].TasksCount)
}

func TestComputeDashboard_SortIsStableAcrossPlants(t *testing.T) {
	same := dueIn(1)
	p1, e1 := plantWith("p1", "A", models.ScheduleEntry{ID: "first", Activity: "a", Frequency: 1, NextDue: same})
	p2, e2 := plantWith("p2", "B", models.ScheduleEntry{ID: "second", Activity: "a", Frequency: 1, NextDue: same})
	plants, schedules := snapshot(p1, e1, p2, e2)

	d := ComputeDashboard(plants, schedules, testNow, "", models.FilterNone)

	assert.Equal(t, []string{"first", "second"}, taskIDs(d))
}

func TestComputeDashboard_Empty(t *testing.T) {
	d := ComputeDashboard(nil, nil, testNow, "", models.FilterNone)

	assert.Empty(t, d.Tasks)
	assert.Zero(t, d.Total)
	assert.Len(t, d.Timeline, models.TimelineDays)
}

// ── DaysBetween ──────────────────────────────────────────────────────────────

func TestDaysBetween(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 1, 10, 23, 50, 0, 0, jakarta)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{name: "same day earlier", to: time.Date(2024, 1, 10, 0, 5, 0, 0, jakarta), want: 0},
		{name: "ten minutes later is tomorrow", to: now.Add(15 * time.Minute), want: 1},
		{name: "utc instant on local next day", to: time.Date(2024, 1, 10, 17, 30, 0, 0, time.UTC), want: 1},
		{name: "across month", to: time.Date(2024, 2, 1, 12, 0, 0, 0, jakarta), want: 22},
		{name: "past", to: time.Date(2024, 1, 3, 12, 0, 0, 0, jakarta), want: -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(now, tt.to))
		})
	}
}
