package ledger

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/shopspring/decimal"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/ports"
)

// HederaLedger implements the Ledger interface on top of the Hedera SDK
type HederaLedger struct {
	client  *hedera.Client
	network string
}

// NewHederaLedger constructs a client for a named network
// (mainnet, testnet or previewnet).
func NewHederaLedger(network string) (*HederaLedger, error) {
	client, err := hedera.ClientForName(network)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %q: %w", network, err)
	}

	log.Printf("Hedera client initialized for %s", network)

	return &HederaLedger{client: client, network: network}, nil
}

// Network returns the network this ledger client targets
func (l *HederaLedger) Network() string {
	return l.network
}

// Close releases the underlying network client
func (l *HederaLedger) Close() error {
	return l.client.Close()
}

// ValidAccountID reports whether s parses as a Hedera account ID
func (l *HederaLedger) ValidAccountID(s string) bool {
	_, err := hedera.AccountIDFromString(s)
	return err == nil
}

// VerifySignature checks a hex-encoded signature over message under the
// claimed public key. Any decode failure is treated as an invalid
// signature rather than a distinct error.
func (l *HederaLedger) VerifySignature(ctx context.Context, message []byte, signatureHex, publicKey string) error {
	key, err := hedera.PublicKeyFromString(publicKey)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", core.ErrInvalidSignature)
	}

	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", core.ErrInvalidSignature)
	}

	if !key.Verify(message, signature) {
		return core.ErrInvalidSignature
	}

	return nil
}

// AccountInfo fetches the account balance from the ledger. The balance
// query is free and needs no operator account.
func (l *HederaLedger) AccountInfo(ctx context.Context, accountID string) (*core.AccountInfo, error) {
	id, err := hedera.AccountIDFromString(accountID)
	if err != nil {
		return nil, core.ErrInvalidAccountID
	}

	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(id).
		Execute(l.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLedgerUnavailable, err)
	}

	// Hbar balances are reported in tinybars, 10^8 per hbar.
	hbar := decimal.New(balance.Hbars.AsTinybar(), -8)

	return &core.AccountInfo{
		AccountID: id.String(),
		Balance:   hbar.String(),
	}, nil
}

var _ ports.Ledger = (*HederaLedger)(nil)
