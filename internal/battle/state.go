package battle

import (
	"errors"
	"math/rand"

	"github.com/Nishant2356/Card-game/internal/game"
)

// Phase is the turn state machine position. Selection is strictly
// sequential per side; execution order inside a round is speed-based.
type Phase string

const (
	PhasePlayer1Selecting Phase = "player1_selecting"
	PhasePlayer2Selecting Phase = "player2_selecting"
	PhaseResolving        Phase = "resolving"
	PhaseFinished         Phase = "finished"
)

var (
	ErrMatchOver     = errors.New("match is over")
	ErrMidRound      = errors.New("operation not allowed during resolution")
	ErrNotYourDeck   = errors.New("card does not belong to player")
	ErrTurnCommitted = errors.New("selections already committed this round")
)

// State is the explicit, serializable battle state. It is mutated only
// through the operations defined on it; observers read snapshots.
type State struct {
	decks      map[game.Player]*Deck
	phase      Phase
	round      int
	selections map[string]*SelectedMove
	pending    map[string]*TargetRequest
	order      []string
	ledger     *EffectLedger
	rng        *rand.Rand

	over   bool
	winner game.Player
	tie    bool
}

// NewState starts a match at round 1 with Player 1 selecting. The random
// source drives accuracy rolls only; tests inject a fixed seed.
func NewState(decks map[game.Player]*Deck, rng *rand.Rand) *State {
	return &State{
		decks:      decks,
		phase:      PhasePlayer1Selecting,
		round:      1,
		selections: make(map[string]*SelectedMove),
		pending:    make(map[string]*TargetRequest),
		ledger:     NewEffectLedger(),
		rng:        rng,
	}
}

func (s *State) Phase() Phase             { return s.phase }
func (s *State) Round() int               { return s.round }
func (s *State) Deck(p game.Player) *Deck { return s.decks[p] }
func (s *State) Ledger() *EffectLedger    { return s.ledger }

// Over reports whether the match has ended, the winning side (empty on a
// tie) and whether both sides fell simultaneously.
func (s *State) Over() (bool, game.Player, bool) { return s.over, s.winner, s.tie }

// ConfirmSelections commits one side's turn. Player 1's confirm hands
// selection to Player 2; Player 2's confirm resolves the round and returns
// the full event log, after which it is Player 1's turn of the next round.
func (s *State) ConfirmSelections(player game.Player) ([]Event, error) {
	if s.over {
		return nil, ErrMatchOver
	}
	current, ok := s.selectingPlayer()
	if !ok {
		return nil, ErrNotSelecting
	}
	if player != current {
		return nil, ErrWrongPlayer
	}
	if !s.SelectionComplete(player) {
		return nil, ErrSelectionShort
	}

	if player == game.Player1 {
		s.phase = PhasePlayer2Selecting
		return nil, nil
	}

	s.phase = PhaseResolving
	events := s.resolveRound()

	s.selections = make(map[string]*SelectedMove)
	s.pending = make(map[string]*TargetRequest)
	s.order = nil

	if s.over {
		s.phase = PhaseFinished
		return events, nil
	}

	// Round boundary: advance the counter, then apply persistent effects
	// exactly once before Player 1 starts selecting again.
	s.round++
	events = append(events, s.ledger.Tick(s.decks, s.round)...)
	if ended := s.checkWin(s.round); ended != nil {
		events = append(events, *ended)
		s.phase = PhaseFinished
		return events, nil
	}
	events = append(events, Event{Type: EventRoundStarted, Round: s.round})
	s.phase = PhasePlayer1Selecting
	return events, nil
}

// Swap exchanges one of the player's benched cards with an explicit active
// slot. Allowed only between rounds, never while a resolution is running,
// only on the initiating player's own deck, and only while the player's own
// selections are still open: a confirmed turn is a commitment, or the round
// would resolve with fewer actions than both sides confirmed. Any selections
// the player had staged are discarded because slot occupancy changed under
// them.
func (s *State) Swap(player game.Player, benchedID string, activeSlot int) error {
	if s.over {
		return ErrMatchOver
	}
	if s.phase == PhaseResolving {
		return ErrMidRound
	}
	if s.phase == PhasePlayer2Selecting && player == game.Player1 {
		return ErrTurnCommitted
	}
	deck := s.decks[player]
	if deck.ByID(benchedID) == nil {
		return ErrNotYourDeck
	}
	if err := deck.Swap(benchedID, activeSlot); err != nil {
		return err
	}
	for id, sel := range s.selections {
		if sel.Player == player {
			delete(s.selections, id)
			s.dropFromOrder(id)
		}
	}
	for id, req := range s.pending {
		if c := s.findCard(req.ActorID); c != nil && c.Player == player {
			delete(s.pending, id)
		}
	}
	return nil
}

// checkWin observes both decks and reports a match_ended event if either
// side has no survivors. Both sides at zero is a valid terminal state with
// no winner precedence.
func (s *State) checkWin(round int) *Event {
	p1 := s.decks[game.Player1].Survivors()
	p2 := s.decks[game.Player2].Survivors()
	if p1 > 0 && p2 > 0 {
		return nil
	}
	s.over = true
	ev := Event{Type: EventMatchEnded, Round: round}
	switch {
	case p1 == 0 && p2 == 0:
		s.tie = true
		ev.Tie = true
	case p2 == 0:
		s.winner = game.Player1
		ev.Winner = game.Player1
	default:
		s.winner = game.Player2
		ev.Winner = game.Player2
	}
	return &ev
}

// Snapshot is the serializable observer view of the whole battle state.
type Snapshot struct {
	Phase      Phase                           `json:"phase"`
	Round      int                             `json:"round"`
	Decks      map[game.Player][]CardSnapshot  `json:"decks"`
	Fainted    map[game.Player]map[string]bool `json:"fainted"`
	Survivors  map[game.Player]int             `json:"survivors"`
	Selections int                             `json:"selections"`
	Over       bool                            `json:"over"`
	Winner     game.Player                     `json:"winner,omitempty"`
	Tie        bool                            `json:"tie,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Phase: s.phase,
		Round: s.round,
		Decks: map[game.Player][]CardSnapshot{
			game.Player1: snapshotDeck(s.decks[game.Player1]),
			game.Player2: snapshotDeck(s.decks[game.Player2]),
		},
		Fainted: map[game.Player]map[string]bool{
			game.Player1: s.decks[game.Player1].FaintedMap(),
			game.Player2: s.decks[game.Player2].FaintedMap(),
		},
		Survivors: map[game.Player]int{
			game.Player1: s.decks[game.Player1].Survivors(),
			game.Player2: s.decks[game.Player2].Survivors(),
		},
		Selections: len(s.selections),
		Over:       s.over,
		Winner:     s.winner,
		Tie:        s.tie,
	}
}
