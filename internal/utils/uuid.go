package utils

import "github.com/google/uuid"

// UUIDGenerator produces note ids. Version 7 ids sort by creation time, which
// keeps ids stable and roughly ordered across storage backends.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 one if the clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
