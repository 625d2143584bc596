package battle

import (
	"github.com/Nishant2356/Card-game/internal/game"
)

// EventType tags one entry of the resolution event log.
type EventType string

const (
	EventRoundStarted  EventType = "round_started"
	EventActionStarted EventType = "action_started"
	EventActionMissed  EventType = "action_missed"
	EventActionSkipped EventType = "action_skipped"
	EventDamage        EventType = "damage"
	EventHeal          EventType = "heal"
	EventEffectCreated EventType = "effect_created"
	EventEffectApplied EventType = "effect_applied"
	EventEffectExpired EventType = "effect_expired"
	EventFainted       EventType = "fainted"
	EventDeckUpdate    EventType = "deck_update"
	EventMatchEnded    EventType = "match_ended"
)

// CardSnapshot is an immutable view of one card for deck_update events.
type CardSnapshot struct {
	DeckID  string      `json:"deckid"`
	Name    string      `json:"name"`
	Player  game.Player `json:"player"`
	Slot    int         `json:"slot"`
	HP      int         `json:"hp"`
	MaxHP   int         `json:"maxHP"`
	Stats   game.Stats  `json:"stats"`
	Fainted bool        `json:"fainted"`
}

// Event is one presentation notification. Events are transient: the engine
// returns them from resolution and keeps no history. Playback pacing (glow
// timing, sound cues) is entirely the consumer's concern.
type Event struct {
	Type      EventType                      `json:"type"`
	Round     int                            `json:"round"`
	Player    game.Player                    `json:"player,omitempty"`
	Actor     string                         `json:"actor,omitempty"`
	ActorName string                         `json:"actorName,omitempty"`
	Move      string                         `json:"move,omitempty"`
	Targets   []string                       `json:"targets,omitempty"`
	Stat      string                         `json:"stat,omitempty"`
	Amount    int                            `json:"amount,omitempty"`
	Winner    game.Player                    `json:"winner,omitempty"`
	Tie       bool                           `json:"tie,omitempty"`
	Decks     map[game.Player][]CardSnapshot `json:"decks,omitempty"`
}

func snapshotDeck(d *Deck) []CardSnapshot {
	out := make([]CardSnapshot, 0, d.Len())
	for i, c := range d.Cards() {
		out = append(out, CardSnapshot{
			DeckID:  c.DeckID,
			Name:    c.Character.Name,
			Player:  c.Player,
			Slot:    i,
			HP:      c.HP(),
			MaxHP:   c.MaxHP,
			Stats:   c.CurrentStats.Clone(),
			Fainted: c.Fainted(),
		})
	}
	return out
}
