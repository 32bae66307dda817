package http

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hashgate/hashgate/service"
)

// SetupRouter sets up the Gin router with CORS, request logging and all
// routes. allowedOrigins of ["*"] (or empty) opens the service to any
// origin, without credentials.
func SetupRouter(authService *service.AuthService, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(corsMiddleware(allowedOrigins))

	handlers := NewAuthHandlers(authService)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	auth := router.Group("/auth")
	{
		auth.POST("/challenge", handlers.Challenge)
		auth.POST("/verify", handlers.Verify)

		authed := auth.Group("")
		authed.Use(AuthMiddleware(authService))
		{
			authed.GET("/validate", handlers.Validate)
			authed.POST("/refresh", handlers.Refresh)
		}
	}

	user := router.Group("/user")
	user.Use(AuthMiddleware(authService))
	{
		user.GET("/me", handlers.Me)
		user.GET("/profile", handlers.Profile)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, 404, "Endpoint not found")
	})

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}

	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}

	return cors.New(config)
}
