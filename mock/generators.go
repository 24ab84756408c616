// Package mock provides deterministic fakes for tests.
package mock

import (
	"fmt"
	"sync/atomic"

	"github.com/logiflow/logiflow"
)

var _ logiflow.IDGenerator = (*IDGenerator)(nil)

// IDGenerator yields a fixed ID, or a sequence when Prefix is set.
type IDGenerator struct {
	// Fixed is returned from every call when non-empty.
	Fixed string

	// Prefix makes ID return Prefix-1, Prefix-2, ... when Fixed is empty.
	Prefix string

	n uint64
}

// NewIDGenerator returns a generator yielding id-1, id-2, ...
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{Prefix: "id"}
}

func (g *IDGenerator) ID() string {
	if g.Fixed != "" {
		return g.Fixed
	}
	return fmt.Sprintf("%s-%d", g.Prefix, atomic.AddUint64(&g.n, 1))
}

var _ logiflow.TokenGenerator = (*TokenGenerator)(nil)

// TokenGenerator yields a fixed token.
type TokenGenerator struct {
	Fixed string
	Err   error
}

func (g *TokenGenerator) Token() (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	return g.Fixed, nil
}
