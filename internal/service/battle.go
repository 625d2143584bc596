package service

import (
	"github.com/Nishant2356/Card-game/internal/battle"
	"github.com/Nishant2356/Card-game/internal/constants"
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/keys"
	"github.com/Nishant2356/Card-game/internal/logging"
)

// StartBattle hydrates both decks from the stored teams and brings the
// round state machine live. Resolution always runs locally in this process;
// the relay only mirrors the transition signal.
func (m *Manager) StartBattle(roomCode string) (battle.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, live := m.battles[roomCode]; live {
		return battle.Snapshot{}, ErrBattleAlreadyLive
	}
	r, err := m.room(roomCode)
	if err != nil {
		return battle.Snapshot{}, err
	}
	if len(r.Teams) != 2 {
		return battle.Snapshot{}, ErrTeamsNotReady
	}

	decks, err := battle.HydrateDecks(r.Teams, m.repo)
	if err != nil {
		return battle.Snapshot{}, err
	}
	st := battle.NewState(decks, m.newRNG())
	m.battles[roomCode] = st

	r.Status = game.RoomStatusInBattle
	r.Message = "Battle started."
	if err := m.repo.UpdateRoom(r); err != nil {
		return battle.Snapshot{}, err
	}

	logging.Info("battle started", logging.Fields{constants.LogFieldRoomCode: roomCode})
	m.broadcast(roomCode, "goToBattle", r.Teams)
	return st.Snapshot(), nil
}

// SelectMove records one card's move intent. An empty move name clears the
// card's selection. The move must resolve to a full catalog definition: the
// card's own resolved move list first, the catalog as fallback, and a
// wholly-missing move refuses the selection.
func (m *Manager) SelectMove(roomCode string, player game.Player, actorID, moveName string) (*battle.TargetRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.state(roomCode)
	if err != nil {
		return nil, err
	}
	if moveName == "" {
		return st.SelectMove(actorID, player, nil)
	}

	move, err := m.lookupMove(st, player, actorID, moveName)
	if err != nil {
		return nil, err
	}
	req, err := st.SelectMove(actorID, player, move)
	if err != nil {
		return nil, err
	}
	m.broadcast(roomCode, "movesSelected", map[string]interface{}{
		"deckid": actorID,
		"player": player,
		"move":   move.Name,
	})
	return req, nil
}

// lookupMove resolves a move name for an actor, preferring the resolved
// moves attached to the card at hydration.
func (m *Manager) lookupMove(st *battle.State, player game.Player, actorID, moveName string) (*game.Move, error) {
	key := keys.NameKey(moveName)
	if deck := st.Deck(player); deck != nil {
		if card := deck.ByID(actorID); card != nil {
			for i := range card.Character.SelectedMoves {
				if keys.NameKey(card.Character.SelectedMoves[i].Name) == key {
					return &card.Character.SelectedMoves[i], nil
				}
			}
		}
	}
	found, err := m.repo.MovesByName([]string{moveName})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrMoveNotFound
	}
	return &found[0], nil
}

// ChooseTargets confirms a pending explicit target choice.
func (m *Manager) ChooseTargets(roomCode, actorID string, targetIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.state(roomCode)
	if err != nil {
		return err
	}
	if err := st.ChooseTargets(actorID, targetIDs); err != nil {
		return err
	}
	m.broadcast(roomCode, "glowingCards", map[string]interface{}{
		"moveMaker": actorID,
		"targets":   targetIDs,
	})
	return nil
}

// ConfirmTurn commits one side's selections. When Player 2 confirms, the
// round resolves synchronously and the full event log is returned; the
// individual events are also mirrored through the relay under the event
// names the frontend listens for.
func (m *Manager) ConfirmTurn(roomCode string, player game.Player) ([]battle.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.state(roomCode)
	if err != nil {
		return nil, err
	}
	events, err := st.ConfirmSelections(player)
	if err != nil {
		return nil, err
	}
	m.broadcast(roomCode, "turnUpdate", st.Phase())
	if len(events) == 0 {
		return nil, nil
	}

	m.broadcast(roomCode, "processingMoves", true)
	for _, ev := range events {
		switch ev.Type {
		case battle.EventDeckUpdate:
			m.broadcast(roomCode, "deckUpdate", ev.Decks)
		case battle.EventFainted:
			m.broadcast(roomCode, "playerFainted", ev.Targets)
		case battle.EventActionStarted:
			m.broadcast(roomCode, "glowingCards", map[string]interface{}{
				"moveMaker": ev.Actor,
				"targets":   ev.Targets,
			})
		case battle.EventRoundStarted:
			m.broadcast(roomCode, "roundUpdate", ev.Round)
		}
	}
	m.broadcast(roomCode, "processingMoves", false)

	if over, winner, tie := st.Over(); over {
		m.finishRoom(roomCode, winner, tie)
	}
	return events, nil
}

// Swap exchanges a benched card with an explicit active slot between rounds.
func (m *Manager) Swap(roomCode string, player game.Player, benchedID string, activeSlot int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.state(roomCode)
	if err != nil {
		return err
	}
	if err := st.Swap(player, benchedID, activeSlot); err != nil {
		return err
	}
	m.broadcast(roomCode, "deckUpdate", st.Snapshot().Decks)
	return nil
}

// Snapshot returns the observer view of a live battle.
func (m *Manager) Snapshot(roomCode string) (battle.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.state(roomCode)
	if err != nil {
		return battle.Snapshot{}, err
	}
	return st.Snapshot(), nil
}

func (m *Manager) finishRoom(roomCode string, winner game.Player, tie bool) {
	delete(m.battles, roomCode)
	r, err := m.room(roomCode)
	if err != nil {
		logging.Error("failed to load room for finish", err, logging.Fields{constants.LogFieldRoomCode: roomCode})
		return
	}
	r.Status = game.RoomStatusFinished
	r.Winner = winner
	switch {
	case tie:
		r.Message = "Both sides fell. No winner."
	case winner != "":
		r.Message = "Victory for " + string(winner)
	}
	if err := m.repo.UpdateRoom(r); err != nil {
		logging.Error("failed to finish room", err, logging.Fields{constants.LogFieldRoomCode: roomCode})
	}
}
