// Package rand provides the identifier and token generators used by the
// in-memory services.
package rand

import (
	"github.com/google/uuid"

	"github.com/logiflow/logiflow"
)

var _ logiflow.IDGenerator = (*IDGenerator)(nil)

// IDGenerator generates UUIDv4 identifiers.
type IDGenerator struct{}

// NewIDGenerator returns a new instance of IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// ID returns a freshly generated identifier.
func (g *IDGenerator) ID() string {
	return uuid.NewString()
}
