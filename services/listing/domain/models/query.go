package models

import (
	"strconv"

	"github.com/metazeka/backend/services/listing/domain"
)

// DefaultLimit applies when the limit parameter is absent or empty.
const DefaultLimit = 50

const (
	MessageUserIDRequired = "user_id required"
	MessageInvalidLimit   = "limit must be a positive integer"
)

// ListQuery selects one user's listings, newest first.
type ListQuery struct {
	UserID string
	Limit  int
}

// NewListQuery validates raw query parameters. user_id is checked before limit.
func NewListQuery(userID, rawLimit string) (ListQuery, error) {
	if userID == "" {
		return ListQuery{}, &domain.ValidationError{Message: MessageUserIDRequired}
	}
	if rawLimit == "" {
		return ListQuery{UserID: userID, Limit: DefaultLimit}, nil
	}
	n, err := strconv.Atoi(rawLimit)
	if err != nil || n <= 0 {
		return ListQuery{}, &domain.ValidationError{Message: MessageInvalidLimit}
	}
	return ListQuery{UserID: userID, Limit: n}, nil
}
