package models

import "time"

// JournalEntry is a timestamped free-text care note owned by a plant.
type JournalEntry struct {
	ID      string `json:"id"`
	PlantID string `json:"plant_id"`

	// CreatedAt is assigned by the server when the entry is added and is
	// never changed afterwards.
	CreatedAt time.Time `json:"created_at"`

	// Note is the free-text body. Updates must keep it non-empty.
	Note string `json:"note"`
}

// JournalNoteRequest is the JSON body for adding or editing a journal entry.
type JournalNoteRequest struct {
	Note string `json:"note"`
}
