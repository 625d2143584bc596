package api

import (
	"net/http"

	"github.com/Nishant2356/Card-game/internal/constants"
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateRoomPayload struct {
	PlayerName string `json:"player_name"`
	Private    bool   `json:"private"`
}

// CreateRoom creates a new room with the caller claiming the Player 1 slot
// and returns the join code the second browser uses.
func (h *GameHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	room := game.Room{
		JoinCode: generateJoinCode(),
		Private:  req.Private,
		Status:   game.RoomStatusWaiting,
		Players: []game.RoomPlayer{
			{Slot: game.Player1, PlayerName: req.PlayerName},
		},
		Message: "Room created. Waiting for second player.",
	}
	if err := h.repo.CreateRoom(&room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRoom})
		return
	}
	c.JSON(http.StatusCreated, room)
}

type JoinRoomPayload struct {
	JoinCode   string `json:"join_code"`
	PlayerName string `json:"player_name"`
}

// JoinRoom claims the next free slot in an existing room.
func (h *GameHandler) JoinRoom(c *gin.Context) {
	var req JoinRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}

	room, slot, err := h.mgr.JoinRoom(code, req.PlayerName)
	if err != nil {
		switch err {
		case service.ErrRoomNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		case service.ErrRoomFull:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRoomFull})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room, "player": slot})
}

// GetRoom returns the lobby state for a join code.
func (h *GameHandler) GetRoom(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	room, err := h.repo.FindRoomByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}
	c.JSON(http.StatusOK, room)
}

type LeaveRoomPayload struct {
	Player game.Player `json:"player"`
}

// LeaveRoom releases a claimed slot.
func (h *GameHandler) LeaveRoom(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req LeaveRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.mgr.LeaveRoom(code, req.Player); err != nil {
		if err == service.ErrRoomNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "left"})
}

// Relay upgrades the request into a websocket relay connection for a room.
func (h *GameHandler) Relay(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	h.hub.ServeWS(c.Writer, c.Request, code)
}

// roomCode validates the :roomCode path parameter and writes the error
// response itself when invalid.
func (h *GameHandler) roomCode(c *gin.Context) (string, bool) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return "", false
	}
	return code, true
}
