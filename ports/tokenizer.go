package ports

import (
	"time"

	"github.com/hashgate/hashgate/core"
)

// Tokenizer mints and validates bearer tokens carrying identity claims
type Tokenizer interface {
	// Mint produces a signed token embedding claims with a fresh expiry
	Mint(claims core.Claims) (string, error)

	// Lifetime reports how long minted tokens remain valid
	Lifetime() time.Duration

	// Validate verifies the token and returns its claims. Returns
	// core.ErrTokenExpired when the signature is good but the expiry has
	// passed, core.ErrTokenMalformed for every other failure.
	Validate(token string) (core.Claims, error)
}
