package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/service"
)

// AuthHandlers contains HTTP handlers for all endpoints
type AuthHandlers struct {
	authService *service.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authService *service.AuthService) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
	}
}

func respondOK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}

// Root returns the service banner and endpoint map
func (h *AuthHandlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hedera authentication server",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth": gin.H{
				"challenge": "POST /auth/challenge",
				"verify":    "POST /auth/verify",
				"validate":  "GET /auth/validate",
				"refresh":   "POST /auth/refresh",
			},
			"user": gin.H{
				"profile": "GET /user/profile",
				"me":      "GET /user/me",
			},
		},
	})
}

// Health reports liveness
func (h *AuthHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Challenge issues a signing challenge for an account
func (h *AuthHandlers) Challenge(c *gin.Context) {
	var req struct {
		AccountID string `json:"accountId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	challenge, err := h.authService.Challenge(c.Request.Context(), req.AccountID)
	if err != nil {
		if errors.Is(err, core.ErrInvalidAccountID) {
			respondError(c, http.StatusBadRequest, "Invalid Hedera account ID format")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to generate challenge")
		return
	}

	respondOK(c, gin.H{
		"challenge": challenge.Text,
		"expiresIn": seconds(h.authService.ChallengeTTL()),
	})
}

// Verify checks the signed challenge and issues a bearer token
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req struct {
		AccountID string `json:"accountId" binding:"required"`
		Signature string `json:"signature" binding:"required"`
		PublicKey string `json:"publicKey" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Account ID, signature and public key are required")
		return
	}

	token, claims, err := h.authService.Verify(c.Request.Context(), req.AccountID, req.Signature, req.PublicKey)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrChallengeNotFound):
			respondError(c, http.StatusBadRequest, "Challenge not found or expired. Please request a new challenge.")
		case errors.Is(err, core.ErrInvalidSignature):
			respondError(c, http.StatusUnauthorized, "Invalid signature")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to verify signature")
		}
		return
	}

	respondOK(c, gin.H{
		"token":     token,
		"accountId": claims.AccountID,
		"expiresIn": seconds(h.authService.TokenLifetime()),
	})
}

// Validate confirms the presented token and echoes its claims
func (h *AuthHandlers) Validate(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		respondError(c, http.StatusInternalServerError, "Claims not found in context")
		return
	}

	respondOK(c, gin.H{
		"valid":     true,
		"accountId": claims.AccountID,
		"publicKey": claims.PublicKey,
	})
}

// Refresh reissues a token with the same claims and a fresh expiry
func (h *AuthHandlers) Refresh(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		respondError(c, http.StatusInternalServerError, "Claims not found in context")
		return
	}

	token, err := h.authService.Refresh(claims)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	respondOK(c, gin.H{
		"token":     token,
		"expiresIn": seconds(h.authService.TokenLifetime()),
	})
}

// Me returns the authenticated identity
func (h *AuthHandlers) Me(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		respondError(c, http.StatusInternalServerError, "Claims not found in context")
		return
	}

	respondOK(c, gin.H{
		"accountId": claims.AccountID,
		"publicKey": claims.PublicKey,
	})
}

// Profile returns the authenticated identity plus its ledger balance
func (h *AuthHandlers) Profile(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		respondError(c, http.StatusInternalServerError, "Claims not found in context")
		return
	}

	info, err := h.authService.AccountProfile(c.Request.Context(), claims.AccountID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch user profile")
		return
	}

	respondOK(c, gin.H{
		"accountId": claims.AccountID,
		"publicKey": claims.PublicKey,
		"balance":   info.Balance,
	})
}
