package ledger

import (
	"context"
	"encoding/hex"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgate/hashgate/core"
)

func newTestLedger(t *testing.T) *HederaLedger {
	t.Helper()
	l, err := NewHederaLedger("testnet")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestNewHederaLedger_UnknownNetwork(t *testing.T) {
	_, err := NewHederaLedger("valhalla")
	assert.Error(t, err)
}

func TestValidAccountID(t *testing.T) {
	l := newTestLedger(t)

	assert.True(t, l.ValidAccountID("0.0.1001"))
	assert.True(t, l.ValidAccountID("0.0.3"))
	assert.False(t, l.ValidAccountID(""))
	assert.False(t, l.ValidAccountID("not-an-account"))
	assert.False(t, l.ValidAccountID("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"))
}

func TestVerifySignature(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	priv, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	pub := priv.PublicKey().String()

	message := []byte("Sign this message to authenticate with your Hedera account 0.0.1001. Timestamp: 1. Nonce: abc")
	signature := hex.EncodeToString(priv.Sign(message))

	assert.NoError(t, l.VerifySignature(ctx, message, signature, pub))

	err = l.VerifySignature(ctx, []byte("a different message"), signature, pub)
	assert.ErrorIs(t, err, core.ErrInvalidSignature)

	err = l.VerifySignature(ctx, message, "zz-not-hex", pub)
	assert.ErrorIs(t, err, core.ErrInvalidSignature)

	err = l.VerifySignature(ctx, message, signature, "not a key")
	assert.ErrorIs(t, err, core.ErrInvalidSignature)

	other, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	err = l.VerifySignature(ctx, message, signature, other.PublicKey().String())
	assert.ErrorIs(t, err, core.ErrInvalidSignature)
}
