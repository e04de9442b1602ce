package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

const day = 24 * time.Hour

// RollOver returns the next due date of entry completed at completedAt:
// completedAt truncated to whole seconds plus entry.Frequency days.
//
// The entry itself is never modified; persisting the result is up to the
// caller, which must leave stored state untouched when an error is returned.
func RollOver(entry models.ScheduleEntry, completedAt time.Time) (time.Time, error) {
	if entry.Frequency <= 0 {
		return time.Time{}, fmt.Errorf("%w: got %d", ErrInvalidFrequency, entry.Frequency)
	}

	return NextDue(completedAt, entry.Frequency), nil
}

// NextDue returns from truncated to whole seconds plus frequency days.
func NextDue(from time.Time, frequency int) time.Time {
	return from.Truncate(time.Second).Add(time.Duration(frequency) * day)
}

// ParseFrequency parses a raw frequency value coming from a form or JSON
// body. Empty, non-numeric and non-positive values yield ErrInvalidFrequency.
func ParseFrequency(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: value is empty", ErrInvalidFrequency)
	}

	frequency, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFrequency, raw)
	}

	if frequency <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidFrequency, frequency)
	}

	return frequency, nil
}
