package logiflow

// IDGenerator generates identifiers for new resources.
type IDGenerator interface {
	// ID returns a new identifier, unique within the process.
	ID() string
}

// TokenGenerator generates random token suffixes used for order and
// tracking numbers.
type TokenGenerator interface {
	// Token returns a new random token.
	Token() (string, error)
}
