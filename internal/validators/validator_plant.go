package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPlantID targets the owning plant of a journal or schedule entry.
	FieldPlantID = "plant_id"

	// FieldName targets the display name of a plant.
	FieldName = "name"

	// FieldTags targets the tag list of a plant.
	FieldTags = "tags"

	// FieldNote targets the body of a journal entry.
	FieldNote = "note"

	// FieldActivity targets the label of a schedule entry.
	FieldActivity = "activity"

	// FieldFrequency targets the repeat interval, in days, of a schedule entry.
	FieldFrequency = "frequency"
)

// PlantValidator implements [Validator] for the plant aggregate:
// [models.PlantInput], [models.JournalEntry] and [models.ScheduleEntry].
type PlantValidator struct{}

// NewPlantValidator returns a ready to use [PlantValidator].
func NewPlantValidator() Validator {
	return &PlantValidator{}
}

// Validate dispatches on the dynamic type of value. Without fields every
// rule of the type is checked.
func (v *PlantValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.PlantInput:
		return v.validatePlantInput(ctx, value, fields...)
	case *models.PlantInput:
		return v.validatePlantInput(ctx, *value, fields...)

	case models.JournalEntry:
		return v.validateJournalEntry(ctx, value, fields...)
	case *models.JournalEntry:
		return v.validateJournalEntry(ctx, *value, fields...)

	case models.ScheduleEntry:
		return v.validateScheduleEntry(ctx, value, fields...)
	case *models.ScheduleEntry:
		return v.validateScheduleEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PlantValidator) validatePlantInput(_ context.Context, input models.PlantInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrEmptyPlantName
			}
		case FieldTags:
			for _, tag := range input.Tags {
				if strings.TrimSpace(tag) == "" || strings.Contains(tag, ",") {
					return ErrInvalidTag
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validateJournalEntry(_ context.Context, entry models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlantID, FieldNote}
	}

	for _, f := range fields {
		switch f {
		case FieldPlantID:
			if entry.PlantID == "" {
				return ErrEmptyPlantID
			}
		case FieldNote:
			if strings.TrimSpace(entry.Note) == "" {
				return ErrEmptyNote
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validateScheduleEntry(_ context.Context, entry models.ScheduleEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlantID, FieldActivity, FieldFrequency}
	}

	for _, f := range fields {
		switch f {
		case FieldPlantID:
			if entry.PlantID == "" {
				return ErrEmptyPlantID
			}
		case FieldActivity:
			if strings.TrimSpace(entry.Activity) == "" {
				return ErrEmptyActivity
			}
		case FieldFrequency:
			if entry.Frequency <= 0 {
				return ErrInvalidSchedule
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
