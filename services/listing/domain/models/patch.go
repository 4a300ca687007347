package models

import "github.com/metazeka/backend/services/listing/domain"

// MessageEmptyTitle is the client-facing text for an update that sets title to "".
const MessageEmptyTitle = "title must not be empty"

// Patch is a partial update. Only title and description are mutable.
type Patch struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return !p.Title.Set && !p.Description.Set
}

// Validate rejects a present, non-null, empty title. An explicit null title
// is left for the store's NOT NULL constraint to refuse.
func (p Patch) Validate() error {
	if p.Title.Set && !p.Title.Null && p.Title.Value == "" {
		return &domain.ValidationError{Message: MessageEmptyTitle}
	}
	return nil
}

// Columns returns the store columns to overwrite, keyed by column name.
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if p.Title.Set {
		cols["title"] = p.Title.Raw()
	}
	if p.Description.Set {
		cols["description"] = p.Description.Raw()
	}
	return cols
}
