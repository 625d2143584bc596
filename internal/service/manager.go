package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Nishant2356/Card-game/internal/battle"
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/storage"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrTeamsNotReady     = errors.New("both teams must be stored before starting")
	ErrBattleNotStarted  = errors.New("battle has not started")
	ErrBattleAlreadyLive = errors.New("battle already in progress")
	ErrMoveNotFound      = errors.New("move not found in catalog")
)

// Broadcaster mirrors engine output to the other browser. The relay hub
// implements it; a nil broadcaster disables mirroring (single-browser play).
type Broadcaster interface {
	Broadcast(roomCode, event string, data interface{})
}

// Manager owns the live battle states. Rooms and the catalog live in the
// repository; battle state is in-memory only and dies with the process.
type Manager struct {
	repo storage.Repository
	hub  Broadcaster

	mu      sync.Mutex
	battles map[string]*battle.State
	newRNG  func() *rand.Rand
}

func NewManager(repo storage.Repository, hub Broadcaster) *Manager {
	return &Manager{
		repo:    repo,
		hub:     hub,
		battles: make(map[string]*battle.State),
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRNGFactory overrides the per-battle random source. Tests use it to
// force deterministic accuracy rolls.
func (m *Manager) SetRNGFactory(f func() *rand.Rand) { m.newRNG = f }

func (m *Manager) broadcast(roomCode, event string, data interface{}) {
	if m.hub != nil {
		m.hub.Broadcast(roomCode, event, data)
	}
}

func (m *Manager) room(roomCode string) (*game.Room, error) {
	r, err := m.repo.FindRoomByJoinCode(roomCode)
	if err != nil || r == nil {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (m *Manager) state(roomCode string) (*battle.State, error) {
	st, ok := m.battles[roomCode]
	if !ok {
		return nil, ErrBattleNotStarted
	}
	return st, nil
}
