package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

type RoomHandler struct {
	rooms *services.RoomEngine
}

func NewRoomHandler(rooms *services.RoomEngine) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.rooms.CreateRoom(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_code": room.RoomCode,
		"status":    room.Status,
		"mode":      room.Mode,
		"language":  room.Language,
		"entry_fee": room.EntryFee,
	})
}

func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req models.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.rooms.JoinRoom(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_code":  room.RoomCode,
		"status":     room.Status,
		"prize_pool": room.PrizePool,
		"started_at": room.StartedAt,
	})
}

func (h *RoomHandler) SubmitGuess(c *gin.Context) {
	var req models.SubmitGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.rooms.SubmitGuess(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RoomHandler) GetRoomStatus(c *gin.Context) {
	state, err := h.rooms.RoomStatus(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
