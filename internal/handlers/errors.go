package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/services"
)

// respondError maps engine errors onto HTTP status codes. Anything not in
// the sentinel set is a storage or programming fault and stays opaque.
func respondError(c *gin.Context, err error) {
	var validationErr game.ValidationError

	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrNotAPlayer):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrRoomFull),
		errors.Is(err, services.ErrGameFinished),
		errors.Is(err, services.ErrUsernameConflict),
		errors.Is(err, services.ErrSettingsMismatch),
		errors.Is(err, services.ErrOpponentNotJoined),
		errors.Is(err, services.ErrGameNotInProgress),
		errors.Is(err, services.ErrInsufficientCoins),
		errors.Is(err, services.ErrInvalidUsername),
		errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
