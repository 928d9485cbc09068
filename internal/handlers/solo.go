package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

type SoloHandler struct {
	solo *services.SoloEngine
}

func NewSoloHandler(solo *services.SoloEngine) *SoloHandler {
	return &SoloHandler{solo: solo}
}

func (h *SoloHandler) CreateGame(c *gin.Context) {
	var req models.CreateSoloGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	g, err := h.solo.CreateSoloGame(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	// The secret stays server-side until the game is over.
	c.JSON(http.StatusOK, gin.H{
		"game_id":       g.GameID,
		"mode":          g.Mode,
		"language":      g.Language,
		"secret_length": g.SecretLength,
		"difficulty":    g.Difficulty,
		"time_limit":    g.TimeLimit,
		"started_at":    g.StartedAt,
	})
}

func (h *SoloHandler) SubmitGuess(c *gin.Context) {
	var req models.SubmitSoloGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.solo.SubmitGuess(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SoloHandler) CompleteGame(c *gin.Context) {
	var req models.CompleteSoloGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	completion, err := h.solo.Complete(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}
