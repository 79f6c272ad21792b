// Package uuid generates build IDs
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New returns a random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Static returns the same ID every time. Used to pin IDs in tests.
type Static string

func (s Static) New() string {
	return string(s)
}
