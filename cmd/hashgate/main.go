package main

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/hashgate/hashgate/adapters/events"
	"github.com/hashgate/hashgate/adapters/ledger"
	"github.com/hashgate/hashgate/adapters/store"
	"github.com/hashgate/hashgate/adapters/tokenizer"
	"github.com/hashgate/hashgate/internal/config"
	"github.com/hashgate/hashgate/ports"
	"github.com/hashgate/hashgate/service"
	"github.com/hashgate/hashgate/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	hederaLedger, err := ledger.NewHederaLedger(cfg.HederaNetwork)
	if err != nil {
		log.Fatalf("Failed to initialize Hedera client: %v", err)
	}
	defer hederaLedger.Close()

	jwtTokenizer := tokenizer.NewJWTTokenizer([]byte(cfg.JWTSecret), cfg.TokenLifetime)

	wmLogger := watermill.NewStdLogger(false, false)

	// A single instance keeps challenges in process memory; with Redis
	// configured, challenges and auth events are shared across instances.
	var challengeStore ports.ChallengeStore
	var publisher message.Publisher

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)

		publisher, err = redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			wmLogger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}

		challengeStore = store.NewRedisStore(redisClient)
	} else {
		challengeStore = store.NewMemoryStore()
		publisher = gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
	}

	eventPub := events.NewWatermillPublisher(publisher)

	authService := service.NewAuthService(hederaLedger, challengeStore, jwtTokenizer, eventPub, cfg.ChallengeTTL)

	router := http.SetupRouter(authService, cfg.CORSOrigins)

	log.Printf("Hedera auth server starting on port %s (network: %s)", cfg.Port, cfg.HederaNetwork)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
