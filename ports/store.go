package ports

import (
	"context"
	"time"
)

// ChallengeStore holds at most one pending challenge per account ID.
// Implementations must be safe for concurrent use and must apply expiry
// lazily on read: an expired record is indistinguishable from a missing
// one.
type ChallengeStore interface {
	// Put stores or overwrites the challenge for accountID with an
	// absolute expiry of now + ttl.
	Put(ctx context.Context, accountID, challenge string, ttl time.Duration) error

	// Get returns the pending challenge text, or core.ErrChallengeNotFound
	// if none exists or it has expired.
	Get(ctx context.Context, accountID string) (string, error)

	// Take atomically removes and returns the pending challenge. Of two
	// racing Takes for the same account, exactly one succeeds.
	Take(ctx context.Context, accountID string) (string, error)

	// Delete removes the challenge if present; absent is not an error.
	Delete(ctx context.Context, accountID string) error
}
