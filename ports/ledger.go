package ports

import (
	"context"

	"github.com/hashgate/hashgate/core"
)

// Ledger wraps the external ledger client: account ID syntax checks,
// raw signature verification, and account metadata lookups.
type Ledger interface {
	// ValidAccountID reports whether s is a syntactically valid account ID
	ValidAccountID(s string) bool

	// VerifySignature checks signatureHex as a signature over message
	// under the claimed public key. Returns core.ErrInvalidSignature on
	// any decode or verification failure.
	VerifySignature(ctx context.Context, message []byte, signatureHex, publicKey string) error

	// AccountInfo fetches balance and metadata for an account
	AccountInfo(ctx context.Context, accountID string) (*core.AccountInfo, error)
}
