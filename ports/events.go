package ports

import "context"

// EventPublisher notifies downstream services about auth activity
type EventPublisher interface {
	PublishAuthenticated(ctx context.Context, accountID, publicKey string) error
}
