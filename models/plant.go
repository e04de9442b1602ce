package models

import (
	"io"
	"time"
)

// Plant is a single tracked ornamental plant. It owns its journal entries and
// maintenance schedules: deleting a plant deletes both sub-collections.
type Plant struct {
	// ID is the opaque identifier assigned by the server on creation.
	ID string `json:"id"`

	// Name is the display name of the plant (e.g. "Monstera by the window").
	Name string `json:"name"`

	// Kind is the species or variety of the plant.
	Kind string `json:"kind"`

	// Origin is the place the plant was bought or collected from.
	Origin string `json:"origin"`

	// Care holds free-text care instructions.
	Care string `json:"care"`

	// Image is the public relative path of the uploaded photo
	// (e.g. "uploads/<uuid>_ficus.jpg"). Empty when no photo was uploaded.
	Image string `json:"image"`

	// Tags is the set of lowercase labels attached to the plant.
	// Order is irrelevant and duplicates are never stored.
	Tags []string `json:"tags"`

	// CreatedAt is the moment the plant was registered.
	CreatedAt time.Time `json:"created_at"`
}

// HasTag reports whether tag is one of the plant's tags.
func (p Plant) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PlantFilter narrows a plant listing at the storage level.
type PlantFilter struct {
	// Tag keeps only plants carrying this exact tag. Empty means no filter.
	Tag string
}

// PlantQuery is the listing request coming from the presentation layer.
type PlantQuery struct {
	// Search is matched case-insensitively against plant name and kind.
	Search string

	// Tag keeps only plants carrying this tag.
	Tag string
}

// PlantList is the result of a plant listing together with the tag index
// used to render the tag filter.
type PlantList struct {
	Plants    []Plant  `json:"plants"`
	AllTags   []string `json:"all_tags"`
	Search    string   `json:"search"`
	ActiveTag string   `json:"active_tag"`
}

// PlantDetail is a plant with its journal (newest first) and its schedules
// (soonest due first).
type PlantDetail struct {
	Plant     Plant           `json:"plant"`
	Journal   []JournalEntry  `json:"journal"`
	Schedules []ScheduleEntry `json:"schedules"`
}

// ImageUpload carries an uploaded plant photo from the transport layer to the
// image storage.
type ImageUpload struct {
	// FileName is the client-provided file name; only its extension and a
	// sanitized base name are kept.
	FileName string

	// Content streams the image bytes.
	Content io.Reader
}

// PlantInput carries the editable fields of a plant from a create or update
// form. Tags are already split and normalized.
type PlantInput struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Origin string   `json:"origin"`
	Care   string   `json:"care"`
	Tags   []string `json:"tags"`
}
