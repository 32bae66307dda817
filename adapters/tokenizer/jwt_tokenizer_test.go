package tokenizer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgate/hashgate/core"
)

var testClaims = core.Claims{
	AccountID: "0.0.1001",
	PublicKey: "302a300506032b6570032100deadbeef",
}

func TestMintValidate_RoundTrip(t *testing.T) {
	j := NewJWTTokenizer([]byte("test-secret"), time.Hour)

	token, err := j.Mint(testClaims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := j.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testClaims, got)
}

func TestMint_UniqueTokens(t *testing.T) {
	j := NewJWTTokenizer([]byte("test-secret"), time.Hour)

	first, err := j.Mint(testClaims)
	require.NoError(t, err)
	second, err := j.Mint(testClaims)
	require.NoError(t, err)

	// Each mint carries a fresh token ID.
	assert.NotEqual(t, first, second)
}

func TestValidate_Expired(t *testing.T) {
	j := NewJWTTokenizer([]byte("test-secret"), -time.Minute)

	token, err := j.Mint(testClaims)
	require.NoError(t, err)

	_, err = j.Validate(token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestValidate_TamperedSignature(t *testing.T) {
	j := NewJWTTokenizer([]byte("test-secret"), time.Hour)

	token, err := j.Mint(testClaims)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = j.Validate(tampered)
	assert.ErrorIs(t, err, core.ErrTokenMalformed)
}

func TestValidate_WrongSecret(t *testing.T) {
	minter := NewJWTTokenizer([]byte("secret-one"), time.Hour)
	validator := NewJWTTokenizer([]byte("secret-two"), time.Hour)

	token, err := minter.Mint(testClaims)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, core.ErrTokenMalformed)
}

func TestValidate_Garbage(t *testing.T) {
	j := NewJWTTokenizer([]byte("test-secret"), time.Hour)

	_, err := j.Validate("not.a.token")
	assert.ErrorIs(t, err, core.ErrTokenMalformed)

	_, err = j.Validate("")
	assert.ErrorIs(t, err, core.ErrTokenMalformed)
}
