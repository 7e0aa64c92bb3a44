package services

import "github.com/google/uuid"

// UUIDGenerator issues version 7 UUIDs. Their leading 48 bits are the Unix
// millisecond timestamp, so ids sort in creation order.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUIDGenerator
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new time-ordered id
func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
