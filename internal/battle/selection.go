package battle

import (
	"errors"

	"github.com/Nishant2356/Card-game/internal/game"
)

var (
	ErrNotSelecting     = errors.New("not in a selection phase")
	ErrWrongPlayer      = errors.New("not this player's selection turn")
	ErrActorNotActive   = errors.New("actor is not in an active slot")
	ErrActorFainted     = errors.New("actor has fainted")
	ErrNoTargetType     = errors.New("move declares no recognized target type")
	ErrNoPendingTargets = errors.New("no pending target choice for actor")
	ErrTargetCount      = errors.New("wrong number of targets")
	ErrTargetInvalid    = errors.New("target is not a valid battlefield card")
	ErrSelectionShort   = errors.New("selection incomplete")
)

// TargetRef is a committed target. For non-self targets the slot index is
// authoritative: resolution re-reads whichever card occupies that slot when
// the action executes. Self-referential targets resolve by the actor's own
// identity regardless of swaps. Character is a selection-time snapshot kept
// for display only.
type TargetRef struct {
	DeckID    string         `json:"deckid"`
	Player    game.Player    `json:"player"`
	Slot      int            `json:"targetIndex"`
	Self      bool           `json:"self,omitempty"`
	Character game.Character `json:"character"`
}

// SelectedMove is one player's committed choice for one of their active
// cards this round. It is consumed and discarded by resolution.
type SelectedMove struct {
	ActorID string      `json:"deckid"`
	Player  game.Player `json:"player"`
	Move    game.Move   `json:"move"`
	Targets []TargetRef `json:"targets"`
}

// TargetRequest is returned by SelectMove when the move needs an explicit
// target choice (single/double). The selection is not committed until
// ChooseTargets confirms exactly Required picks.
type TargetRequest struct {
	ActorID  string    `json:"deckid"`
	Move     game.Move `json:"move"`
	Required int       `json:"required"`
}

// battlefield returns every currently-active card on both sides.
func (s *State) battlefield() []*Card {
	cards := make([]*Card, 0, 2*ActiveSlots)
	for _, p := range []game.Player{game.Player1, game.Player2} {
		cards = append(cards, s.decks[p].Active()...)
	}
	return cards
}

func (s *State) findCard(id string) *Card {
	for _, d := range s.decks {
		if c := d.ByID(id); c != nil {
			return c
		}
	}
	return nil
}

func (s *State) selectingPlayer() (game.Player, bool) {
	switch s.phase {
	case PhasePlayer1Selecting:
		return game.Player1, true
	case PhasePlayer2Selecting:
		return game.Player2, true
	}
	return "", false
}

// SelectMove records (or clears, when move is nil) the pending action for an
// active, unfainted card. Re-selecting replaces any prior choice. When the
// move requires explicit targeting the returned TargetRequest must be
// answered via ChooseTargets before the selection counts.
func (s *State) SelectMove(actorID string, player game.Player, move *game.Move) (*TargetRequest, error) {
	current, ok := s.selectingPlayer()
	if !ok {
		return nil, ErrNotSelecting
	}
	if player != current {
		return nil, ErrWrongPlayer
	}

	if move == nil {
		delete(s.selections, actorID)
		delete(s.pending, actorID)
		s.dropFromOrder(actorID)
		return nil, nil
	}

	deck := s.decks[player]
	actor := deck.ByID(actorID)
	if actor == nil {
		return nil, ErrUnknownCard
	}
	if slot, _ := deck.SlotOf(actorID); slot >= ActiveSlots {
		return nil, ErrActorNotActive
	}
	if actor.Fainted() {
		return nil, ErrActorFainted
	}

	tt, ok := move.FirstTargetType()
	if !ok {
		return nil, ErrNoTargetType
	}

	switch tt {
	case game.TargetSelf:
		s.commitSelection(&SelectedMove{
			ActorID: actorID,
			Player:  player,
			Move:    *move,
			Targets: []TargetRef{selfRef(actor)},
		})
		return nil, nil
	case game.TargetAll:
		var targets []TargetRef
		for _, c := range s.battlefield() {
			if c.DeckID == actorID {
				continue
			}
			targets = append(targets, s.slotRef(c))
		}
		s.commitSelection(&SelectedMove{
			ActorID: actorID,
			Player:  player,
			Move:    *move,
			Targets: targets,
		})
		return nil, nil
	default:
		req := &TargetRequest{ActorID: actorID, Move: *move, Required: tt.PickCount()}
		// replacing a prior committed selection drops it until targets confirm
		delete(s.selections, actorID)
		s.dropFromOrder(actorID)
		s.pending[actorID] = req
		return req, nil
	}
}

// ChooseTargets answers a pending single/double target request. The pick
// count must match exactly and every pick must be an active battlefield card
// other than the actor; anything else refuses the confirmation and leaves
// the request pending.
func (s *State) ChooseTargets(actorID string, targetIDs []string) error {
	req, ok := s.pending[actorID]
	if !ok {
		return ErrNoPendingTargets
	}
	actor := s.findCard(actorID)
	if actor == nil {
		return ErrUnknownCard
	}
	if len(targetIDs) != req.Required {
		return ErrTargetCount
	}

	field := make(map[string]*Card, 2*ActiveSlots)
	for _, c := range s.battlefield() {
		field[c.DeckID] = c
	}

	targets := make([]TargetRef, 0, len(targetIDs))
	seen := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		c, ok := field[id]
		if !ok || id == actorID {
			return ErrTargetInvalid
		}
		if _, dup := seen[id]; dup {
			return ErrTargetInvalid
		}
		seen[id] = struct{}{}
		targets = append(targets, s.slotRef(c))
	}

	delete(s.pending, actorID)
	s.commitSelection(&SelectedMove{
		ActorID: actorID,
		Player:  actor.Player,
		Move:    req.Move,
		Targets: targets,
	})
	return nil
}

func (s *State) commitSelection(sel *SelectedMove) {
	if _, exists := s.selections[sel.ActorID]; !exists {
		s.order = append(s.order, sel.ActorID)
	}
	s.selections[sel.ActorID] = sel
}

func (s *State) dropFromOrder(actorID string) {
	for i, id := range s.order {
		if id == actorID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// SelectionComplete reports whether the player has a committed selection for
// every active, unfainted card.
func (s *State) SelectionComplete(player game.Player) bool {
	count := 0
	for _, sel := range s.selections {
		if sel.Player == player {
			count++
		}
	}
	return count == s.decks[player].ActiveUnfainted()
}

// Selections returns the committed selections in commitment order.
func (s *State) Selections() []*SelectedMove {
	out := make([]*SelectedMove, 0, len(s.order))
	for _, id := range s.order {
		if sel, ok := s.selections[id]; ok {
			out = append(out, sel)
		}
	}
	return out
}

func selfRef(actor *Card) TargetRef {
	return TargetRef{
		DeckID:    actor.DeckID,
		Player:    actor.Player,
		Self:      true,
		Character: actor.Character,
	}
}

func (s *State) slotRef(c *Card) TargetRef {
	slot, _ := s.decks[c.Player].SlotOf(c.DeckID)
	return TargetRef{
		DeckID:    c.DeckID,
		Player:    c.Player,
		Slot:      slot,
		Character: c.Character,
	}
}
