package domain

import "errors"

// Sentinel errors for the listing domain. Use errors.Is() to check these.
var (
	// ErrListingNotFound indicates no row matched the requested id.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidListing indicates the request violates listing constraints.
	ErrInvalidListing = errors.New("invalid listing")
)

// ValidationError rejects a request before it reaches the store. Message is
// shown to the client as-is. It matches ErrInvalidListing under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidListing }

// StoreError is a failure reported by the record store. Message is the
// store's own text and is forwarded to the client verbatim.
type StoreError struct {
	Op       string
	Code     string
	Message  string
	NotFound bool
	Err      error
}

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports ErrListingNotFound for not-found store errors.
func (e *StoreError) Is(target error) bool {
	return e.NotFound && target == ErrListingNotFound
}
