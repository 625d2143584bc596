package api

import (
	"github.com/Nishant2356/Card-game/internal/relay"
	"github.com/Nishant2356/Card-game/internal/service"
	"github.com/Nishant2356/Card-game/internal/storage"
)

// GameHandler groups all HTTP handlers.
type GameHandler struct {
	repo storage.Repository
	mgr  *service.Manager
	hub  *relay.Hub
}

// NewGameHandler creates a new GameHandler over the repository, the battle
// manager and the websocket relay hub.
func NewGameHandler(repo storage.Repository, mgr *service.Manager, hub *relay.Hub) *GameHandler {
	return &GameHandler{repo: repo, mgr: mgr, hub: hub}
}
