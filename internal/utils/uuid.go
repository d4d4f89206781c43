package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered ids for records, photo file names and
// sessions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewID is a shortcut for NewUUIDGenerator().Generate().
func NewID() string {
	return NewUUIDGenerator().Generate()
}
