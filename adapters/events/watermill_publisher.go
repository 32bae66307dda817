package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/hashgate/hashgate/ports"
)

// AuthenticatedTopic is the topic for successful authentications
const AuthenticatedTopic = "hashgate.authenticated"

// AuthenticatedEvent notifies downstream services that an account has
// proven control of its keypair and received a token
type AuthenticatedEvent struct {
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishAuthenticated publishes an authentication event
func (p *WatermillPublisher) PublishAuthenticated(ctx context.Context, accountID, publicKey string) error {
	event := AuthenticatedEvent{
		AccountID: accountID,
		PublicKey: publicKey,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)

	if err := p.publisher.Publish(AuthenticatedTopic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
