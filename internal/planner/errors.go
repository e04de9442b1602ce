package planner

import "errors"

// ErrInvalidFrequency is returned when a schedule frequency is absent,
// non-numeric or not a positive number of days.
var ErrInvalidFrequency = errors.New("frequency must be a positive number of days")
