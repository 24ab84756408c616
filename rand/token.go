package rand

import (
	"crypto/rand"
	"math/big"

	"github.com/logiflow/logiflow"
)

// alphabet matches what printed order and tracking numbers may contain.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var _ logiflow.TokenGenerator = (*TokenGenerator)(nil)

// TokenGenerator generates random alphanumeric tokens of a fixed size.
type TokenGenerator struct {
	size int
}

// NewTokenGenerator returns a token generator producing tokens of size n.
func NewTokenGenerator(n int) *TokenGenerator {
	return &TokenGenerator{
		size: n,
	}
}

// Token returns a new random token.
func (g *TokenGenerator) Token() (string, error) {
	b := make([]byte, g.size)
	max := big.NewInt(int64(len(alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
