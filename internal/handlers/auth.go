package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

type AuthHandler struct {
	jwtService *services.JWTService
}

func NewAuthHandler(jwtService *services.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

// GuestLogin issues a session token for a display name. There is no account
// registration; the sanitized name is the identity.
func (h *AuthHandler) GuestLogin(c *gin.Context) {
	var req models.GuestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	username := strings.TrimSpace(req.Username)
	if models.SanitizeUsername(username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username"})
		return
	}

	sessionID := uuid.New().String()
	token, err := h.jwtService.GenerateToken(username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"username":   username,
		"session_id": sessionID,
	})
}
