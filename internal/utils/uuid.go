package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers used as request trace IDs. UUIDv7
// keeps trace IDs time-ordered so log lines from one instance sort by
// arrival.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
