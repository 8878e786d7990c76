package service

import "github.com/google/uuid"

// IDGenerator produces unique entity identifiers
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random (version 4) UUIDs, unique across rapid successive calls
type UUIDGenerator struct{}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
