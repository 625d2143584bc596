package api

import (
	"net/http"

	"github.com/Nishant2356/Card-game/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListCharacters returns the full character catalog.
func (h *GameHandler) ListCharacters(c *gin.Context) {
	chars, err := h.repo.ListCharacters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
		return
	}
	c.JSON(http.StatusOK, chars)
}

// ListMoves returns the full move catalog.
func (h *GameHandler) ListMoves(c *gin.Context) {
	moves, err := h.repo.ListMoves()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
		return
	}
	c.JSON(http.StatusOK, moves)
}

// CharactersByName returns the characters matching the comma-separated
// ?names= query. Names without a catalog entry are simply absent from the
// result; the response is never an error for partial misses.
func (h *GameHandler) CharactersByName(c *gin.Context) {
	names := splitNamesParam(c.Query("names"))
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNamesParamRequired})
		return
	}
	chars, err := h.repo.CharactersByName(names)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
		return
	}
	c.JSON(http.StatusOK, chars)
}

// MovesByName returns the moves matching the comma-separated ?names= query.
func (h *GameHandler) MovesByName(c *gin.Context) {
	names := splitNamesParam(c.Query("names"))
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNamesParamRequired})
		return
	}
	moves, err := h.repo.MovesByName(names)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
		return
	}
	c.JSON(http.StatusOK, moves)
}
