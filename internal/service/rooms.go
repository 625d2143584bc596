package service

import (
	"github.com/Nishant2356/Card-game/internal/constants"
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/logging"
)

// JoinRoom claims the next free player slot in a room, mirroring the two
// slot stack of the relay: Player 1 first, then Player 2, then full.
func (m *Manager) JoinRoom(roomCode, playerName string) (*game.Room, game.Player, error) {
	r, err := m.room(roomCode)
	if err != nil {
		return nil, "", err
	}
	if len(r.Players) >= 2 {
		return nil, "", ErrRoomFull
	}

	taken := make(map[game.Player]bool, len(r.Players))
	for _, p := range r.Players {
		taken[p.Slot] = true
	}
	slot := game.Player1
	if taken[game.Player1] {
		slot = game.Player2
	}

	r.Players = append(r.Players, game.RoomPlayer{RoomID: r.ID, Slot: slot, PlayerName: playerName})
	if len(r.Players) == 2 {
		r.Status = game.RoomStatusPreparing
		r.Message = "Both players joined. Select your teams."
	}
	if err := m.repo.UpdateRoom(r); err != nil {
		return nil, "", err
	}
	logging.Info("player joined room", logging.Fields{
		constants.LogFieldRoomCode: roomCode,
		constants.LogFieldPlayer:   slot,
	})
	return r, slot, nil
}

// LeaveRoom releases a claimed slot, returning it to the stack so a new
// browser can take it. Mirrors the relay's release-on-disconnect behavior.
func (m *Manager) LeaveRoom(roomCode string, slot game.Player) error {
	r, err := m.room(roomCode)
	if err != nil {
		return err
	}
	if err := m.repo.RemovePlayerBySlot(r.ID, slot); err != nil {
		return err
	}
	logging.Info("player left room", logging.Fields{
		constants.LogFieldRoomCode: roomCode,
		constants.LogFieldPlayer:   slot,
	})
	return nil
}

// SaveTeam stores one player's team selection on the room and mirrors it to
// the other browser. Re-saving replaces the previous team for that side.
func (m *Manager) SaveTeam(roomCode string, team game.TeamSelection) (*game.Room, error) {
	r, err := m.room(roomCode)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range r.Teams {
		if r.Teams[i].Player == team.Player {
			r.Teams[i] = team
			replaced = true
			break
		}
	}
	if !replaced {
		r.Teams = append(r.Teams, team)
	}
	if err := m.repo.UpdateRoom(r); err != nil {
		return nil, err
	}
	m.broadcast(roomCode, "teamSelected", r.Teams)
	return r, nil
}
