package models

import (
	"time"

	"github.com/metazeka/backend/services/listing/domain"
)

// Listing is one row of the listings table. id and created_at are assigned
// by the store; user_id never changes after insert.
type Listing struct {
	ID          string    `json:"id"          example:"3f1c2a7e-9b1d-4c55-8f0e-2b7a5d8c9e10"`
	UserID      string    `json:"user_id"     example:"user_123"`
	Title       string    `json:"title"       example:"2+1 daire, Kadıköy"`
	Description *string   `json:"description" example:"Deniz manzaralı"`
	CreatedAt   time.Time `json:"created_at"  example:"2025-03-01T06:30:00.123Z"`
} // @name Listing

// Draft is a listing that has not been inserted yet.
// Description is always sent, as null when absent.
type Draft struct {
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// MessageDraftRequired is the client-facing text for a draft missing user_id or title.
const MessageDraftRequired = "user_id and title required"

// NewDraft returns a Draft or a *domain.ValidationError when userID or title is empty.
func NewDraft(userID, title string, description *string) (*Draft, error) {
	if userID == "" || title == "" {
		return nil, &domain.ValidationError{Message: MessageDraftRequired}
	}
	return &Draft{UserID: userID, Title: title, Description: description}, nil
}
