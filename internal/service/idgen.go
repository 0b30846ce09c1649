package service

import "github.com/google/uuid"

// IDGenerator supplies unique identifiers for orders and products. It is an
// injected collaborator so the code that builds those records stays
// deterministic under test.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
