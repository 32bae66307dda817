package tokenizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/ports"
)

const AudienceAccess = "auth:access"

// JWTTokenizer implements the Tokenizer interface with HS256 over a
// server-held secret. Tokens are self-contained: validity is decided by
// the signature and the expiry claim alone, with no session table.
type JWTTokenizer struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTTokenizer creates a tokenizer signing with secret; minted
// tokens expire lifetime after issuance.
func NewJWTTokenizer(secret []byte, lifetime time.Duration) *JWTTokenizer {
	return &JWTTokenizer{secret: secret, lifetime: lifetime}
}

// Lifetime returns the configured token lifetime
func (j *JWTTokenizer) Lifetime() time.Duration {
	return j.lifetime
}

// Mint produces a signed token embedding claims with a fresh expiry
func (j *JWTTokenizer) Mint(claims core.Claims) (string, error) {
	now := time.Now()
	authClaims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.AccountID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.lifetime)),
			Audience:  jwt.ClaimStrings{AudienceAccess},
		},
		PublicKey: claims.PublicKey,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims)

	signedToken, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate verifies the token signature and expiry and returns the
// embedded claims. A good signature with a passed expiry is reported as
// expired; every other failure is malformed.
func (j *JWTTokenizer) Validate(tokenStr string) (core.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithAudience(AudienceAccess))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return core.Claims{}, core.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return core.Claims{}, core.ErrTokenExpired
		default:
			return core.Claims{}, core.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return core.Claims{}, core.ErrTokenMalformed
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return core.Claims{}, core.ErrTokenMalformed
	}

	return core.Claims{
		AccountID: claims.Subject,
		PublicKey: claims.PublicKey,
	}, nil
}

var _ ports.Tokenizer = (*JWTTokenizer)(nil)
