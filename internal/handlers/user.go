package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

type UserHandler struct {
	profiles *services.ProfileService
}

func NewUserHandler(profiles *services.ProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// GetProfile returns the stored profile, or the defaults with is_new_user
// set when the player has never finished a game or spent coins.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, isNew, err := h.profiles.GetProfile(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":     profile,
		"win_rate":    profile.WinRate(),
		"is_new_user": isNew,
	})
}

func (h *UserHandler) SpendCoins(c *gin.Context) {
	var req models.SpendCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	balance, err := h.profiles.SpendCoins(req.Username, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": req.Username,
		"spent":    req.Amount,
		"balance":  balance,
	})
}

func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	board, err := h.profiles.Leaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": board})
}
