package api

import (
	"net/http"

	"github.com/Nishant2356/Card-game/internal/battle"
	"github.com/Nishant2356/Card-game/internal/constants"
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/service"

	"github.com/gin-gonic/gin"
)

type SaveTeamPayload struct {
	Team game.TeamSelection `json:"team"`
}

// SaveTeam stores one player's team on the room.
func (h *GameHandler) SaveTeam(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req SaveTeamPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	room, err := h.mgr.SaveTeam(code, req.Team)
	if err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// StartBattle hydrates the decks and opens round 1.
func (h *GameHandler) StartBattle(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	snap, err := h.mgr.StartBattle(code)
	if err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type SelectMovePayload struct {
	Player  game.Player `json:"player"`
	ActorID string      `json:"deckid"`
	Move    string      `json:"move"` // empty clears the selection
}

// SelectMove records or clears one card's move intent. When the move needs
// explicit targets, the pending request is returned for the client's
// target-selection modal.
func (h *GameHandler) SelectMove(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req SelectMovePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	pending, err := h.mgr.SelectMove(code, req.Player, req.ActorID, req.Move)
	if err != nil {
		h.writeBattleError(c, err)
		return
	}
	if pending != nil {
		c.JSON(http.StatusOK, gin.H{"pending_targets": pending})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "selected"})
}

type ChooseTargetsPayload struct {
	ActorID   string   `json:"deckid"`
	TargetIDs []string `json:"targets"`
}

// ChooseTargets confirms a pending single/double target choice.
func (h *GameHandler) ChooseTargets(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req ChooseTargetsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.mgr.ChooseTargets(code, req.ActorID, req.TargetIDs); err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "targets confirmed"})
}

type ConfirmTurnPayload struct {
	Player game.Player `json:"player"`
}

// ConfirmTurn commits one side's selections; Player 2's confirm resolves
// the round and returns the event log for playback.
func (h *GameHandler) ConfirmTurn(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req ConfirmTurnPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	events, err := h.mgr.ConfirmTurn(code, req.Player)
	if err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type SwapPayload struct {
	Player     game.Player `json:"player"`
	BenchedID  string      `json:"deckid"`
	ActiveSlot int         `json:"active_slot"`
}

// Swap exchanges a benched card with an active slot between rounds.
func (h *GameHandler) Swap(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	var req SwapPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.mgr.Swap(code, req.Player, req.BenchedID, req.ActiveSlot); err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "swapped"})
}

// BattleState returns the observer snapshot of a live battle.
func (h *GameHandler) BattleState(c *gin.Context) {
	code, ok := h.roomCode(c)
	if !ok {
		return
	}
	snap, err := h.mgr.Snapshot(code)
	if err != nil {
		h.writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// writeBattleError maps service and engine errors onto HTTP statuses.
// Invalid player intent is a refusal, not a server fault.
func (h *GameHandler) writeBattleError(c *gin.Context, err error) {
	switch err {
	case service.ErrRoomNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
	case service.ErrBattleNotStarted:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotStarted})
	case service.ErrBattleAlreadyLive:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyLive})
	case service.ErrTeamsNotReady:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTeamsNotReady})
	case service.ErrMoveNotFound,
		battle.ErrUnknownCard, battle.ErrActorNotActive, battle.ErrActorFainted,
		battle.ErrNoTargetType, battle.ErrNoPendingTargets, battle.ErrTargetCount,
		battle.ErrTargetInvalid, battle.ErrSelectionShort, battle.ErrEmptyBench,
		battle.ErrInvalidSlot, battle.ErrCardNotBenched, battle.ErrNotYourDeck:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case battle.ErrNotSelecting, battle.ErrWrongPlayer, battle.ErrMidRound,
		battle.ErrMatchOver, battle.ErrTurnCommitted:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreMove})
	}
}
