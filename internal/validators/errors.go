package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPlantID    = errors.New("plant ID is required")
	ErrEmptyPlantName  = errors.New("plant name is required")
	ErrInvalidTag      = errors.New("tags must be non-empty and contain no commas")
	ErrEmptyNote       = errors.New("journal note is required")
	ErrEmptyActivity   = errors.New("schedule activity is required")
	ErrInvalidSchedule = errors.New("schedule frequency must be a positive number of days")
)
