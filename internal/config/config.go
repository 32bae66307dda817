package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration, loaded from the environment
type Config struct {
	Port          string
	JWTSecret     string
	TokenLifetime time.Duration
	ChallengeTTL  time.Duration
	HederaNetwork string
	CORSOrigins   []string
	RedisURL      string
}

// Load reads configuration from environment variables. JWT_SECRET is
// the only required variable; everything else has a default.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	lifetime := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", v, err)
		}
		lifetime = parsed
	}

	challengeTTL := 300 * time.Second
	if v := os.Getenv("CHALLENGE_EXPIRATION"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid CHALLENGE_EXPIRATION %q", v)
		}
		challengeTTL = time.Duration(secs) * time.Second
	}

	network := os.Getenv("HEDERA_NETWORK")
	if network == "" {
		network = "testnet"
	}
	switch network {
	case "mainnet", "testnet", "previewnet":
	default:
		return nil, fmt.Errorf("invalid HEDERA_NETWORK %q", network)
	}

	origins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return &Config{
		Port:          port,
		JWTSecret:     secret,
		TokenLifetime: lifetime,
		ChallengeTTL:  challengeTTL,
		HederaNetwork: network,
		CORSOrigins:   origins,
		RedisURL:      os.Getenv("REDIS_URL"),
	}, nil
}
