package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for new secret entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 identifiers embed a
// timestamp, so IDs sort in creation order. Falls back to a random
// UUIDv4 if the system clock-based generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
