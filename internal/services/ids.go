package services

import "github.com/google/uuid"

// NewID returns a time-ordered identifier: a millisecond timestamp followed by
// random bits (UUIDv7). Uniqueness is practical, not checked against the store.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
