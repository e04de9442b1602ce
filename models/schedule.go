package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ScheduleEntry is a recurring maintenance task owned by a plant
// (watering, fertilizing, repotting...).
type ScheduleEntry struct {
	ID      string `json:"id"`
	PlantID string `json:"plant_id"`

	// Activity is the free-text label of the task.
	Activity string `json:"activity"`

	// Frequency is the recurrence period in days. Stored entries always
	// have a positive frequency; legacy rows may carry zero when the value
	// was missing or malformed.
	Frequency int `json:"frequency"`

	// NextDue is the moment the task is due next.
	NextDue DueDate `json:"next_due"`
}

// ScheduleRequest is the JSON body for adding a schedule. Frequency is kept
// raw so that both `7` and `"7"` are accepted and validated in one place.
type ScheduleRequest struct {
	Activity  string          `json:"activity"`
	Frequency json.RawMessage `json:"frequency"`
}

// FrequencyText returns the raw frequency as text with JSON string quotes
// removed. An absent value yields an empty string.
func (r ScheduleRequest) FrequencyText() string {
	raw := strings.TrimSpace(string(r.Frequency))
	if raw == "" || raw == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		return strings.TrimSpace(unquoted)
	}
	return raw
}
