package core

import "time"

// Challenge represents a pending authentication challenge
type Challenge struct {
	AccountID string    // Hedera account ID of the user (shard.realm.num)
	Text      string    // The exact message the client must sign
	IssuedAt  time.Time // When the challenge was created
	ExpiresAt time.Time // When the challenge expires
}

// Claims represents the identity carried inside a bearer token.
// Immutable once minted; its lifetime is the token's lifetime.
type Claims struct {
	AccountID string // Hedera account ID the keypair is bound to
	PublicKey string // Public key the signature was verified against
}

// AccountInfo is read-only account metadata resolved from the ledger
type AccountInfo struct {
	AccountID string // Normalized account ID
	Balance   string // Account balance in hbar, decimal string
}
