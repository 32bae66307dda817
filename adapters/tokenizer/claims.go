package tokenizer

import "github.com/golang-jwt/jwt/v5"

// AuthClaims combines standard claims with the verified public key
type AuthClaims struct {
	jwt.RegisteredClaims
	PublicKey string `json:"publicKey"`
}
