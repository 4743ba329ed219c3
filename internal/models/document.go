package models

import "time"

// GeneratedDocument is what a generation call hands back to the caller.
// Content is populated for inline delivery; Locator for stored documents.
type GeneratedDocument struct {
	FileName    string    `json:"file_name"`
	PageCount   int       `json:"page_count"`
	GeneratedAt time.Time `json:"generated_at"`

	Content []byte           `json:"-"`
	Locator *DocumentLocator `json:"locator,omitempty"`
	URL     string           `json:"url,omitempty"`
}

// DocumentLocator identifies a stored document in object storage.
type DocumentLocator struct {
	Bucket     string    `json:"bucket"`
	ObjectName string    `json:"object_name"`
	FileName   string    `json:"file_name"`
	PageCount  int       `json:"page_count"`
	StoredAt   time.Time `json:"stored_at"`
}
