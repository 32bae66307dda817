package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/ports"
)

// DefaultChallengeTTL is how long an issued challenge can be answered
const DefaultChallengeTTL = 5 * time.Minute

// AuthService orchestrates the challenge-response protocol: challenge
// issuance, proof verification and token minting. The implicit state
// machine per account lives in the challenge store: no record means no
// pending challenge; a successful Verify, an expiry or an overwriting
// Challenge all collapse back to that state.
type AuthService struct {
	ledger    ports.Ledger
	store     ports.ChallengeStore
	tokenizer ports.Tokenizer
	eventPub  ports.EventPublisher

	challengeTTL time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(
	ledger ports.Ledger,
	store ports.ChallengeStore,
	tokenizer ports.Tokenizer,
	eventPub ports.EventPublisher,
	challengeTTL time.Duration,
) *AuthService {
	if challengeTTL <= 0 {
		challengeTTL = DefaultChallengeTTL
	}
	return &AuthService{
		ledger:       ledger,
		store:        store,
		tokenizer:    tokenizer,
		eventPub:     eventPub,
		challengeTTL: challengeTTL,
	}
}

// ChallengeTTL returns the configured challenge validity window
func (s *AuthService) ChallengeTTL() time.Duration {
	return s.challengeTTL
}

// TokenLifetime returns the lifetime of minted tokens
func (s *AuthService) TokenLifetime() time.Duration {
	return s.tokenizer.Lifetime()
}

// Challenge issues a fresh challenge for accountID, overwriting any
// pending one. The returned text is the exact byte sequence the client
// must sign.
func (s *AuthService) Challenge(ctx context.Context, accountID string) (*core.Challenge, error) {
	if !s.ledger.ValidAccountID(accountID) {
		return nil, core.ErrInvalidAccountID
	}

	nonceBytes := make([]byte, 32)
	if _, err := rand.Read(nonceBytes); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	now := time.Now()
	challenge := &core.Challenge{
		AccountID: accountID,
		Text: fmt.Sprintf(
			"Sign this message to authenticate with your Hedera account %s. Timestamp: %d. Nonce: %s",
			accountID, now.UnixNano(), hex.EncodeToString(nonceBytes),
		),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.challengeTTL),
	}

	if err := s.store.Put(ctx, accountID, challenge.Text, s.challengeTTL); err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	return challenge, nil
}

// Verify checks signatureHex as a signature over the pending challenge
// under publicKey and mints a bearer token on success. The challenge is
// consumed only after the proof succeeds, so a client may retry a
// botched signature within the TTL window; a consumed, expired or
// never-issued challenge all report core.ErrChallengeNotFound.
func (s *AuthService) Verify(ctx context.Context, accountID, signatureHex, publicKey string) (string, core.Claims, error) {
	text, err := s.store.Get(ctx, accountID)
	if err != nil {
		return "", core.Claims{}, core.ErrChallengeNotFound
	}

	if err := s.ledger.VerifySignature(ctx, []byte(text), signatureHex, publicKey); err != nil {
		if errors.Is(err, core.ErrInvalidSignature) {
			return "", core.Claims{}, err
		}
		return "", core.Claims{}, fmt.Errorf("signature verification failed: %w", err)
	}

	// Single-use enforcement: the atomic take guarantees that of two
	// verifications racing on one challenge, exactly one mints a token.
	// A text mismatch means the challenge was superseded mid-verify.
	taken, err := s.store.Take(ctx, accountID)
	if err != nil || taken != text {
		return "", core.Claims{}, core.ErrChallengeNotFound
	}

	claims := core.Claims{
		AccountID: accountID,
		PublicKey: publicKey,
	}

	token, err := s.tokenizer.Mint(claims)
	if err != nil {
		return "", core.Claims{}, fmt.Errorf("failed to mint token: %w", err)
	}

	// Downstream notification is best effort; the token is already
	// minted, which is the part that matters.
	if err := s.eventPub.PublishAuthenticated(ctx, accountID, publicKey); err != nil {
		log.Printf("Warning: failed to publish authenticated event: %v", err)
	}

	return token, claims, nil
}

// Refresh reissues a token with the same claims and a fresh expiry. The
// caller must have validated a prior token; this is not a bypass of the
// challenge-response exchange.
func (s *AuthService) Refresh(claims core.Claims) (string, error) {
	token, err := s.tokenizer.Mint(claims)
	if err != nil {
		return "", fmt.Errorf("failed to mint token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies a bearer token and returns its claims
func (s *AuthService) ValidateToken(token string) (core.Claims, error) {
	return s.tokenizer.Validate(token)
}

// AccountProfile fetches ledger metadata for an authenticated account
func (s *AuthService) AccountProfile(ctx context.Context, accountID string) (*core.AccountInfo, error) {
	return s.ledger.AccountInfo(ctx, accountID)
}
