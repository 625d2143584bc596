package battle

import (
	"github.com/google/uuid"

	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/logging"
)

// StatEffect is a duration-bound stat modifier created by a support-family
// role. Targets keep the slot-commitment semantics of the creating action:
// non-self bindings follow whoever occupies the slot at application time,
// identity lookup is tried first so benched targets keep their effects.
type StatEffect struct {
	ID       string              `json:"id"`
	Move     game.Move           `json:"moveDetails"`
	Mods     []game.StatModifier `json:"affectedStats"`
	Duration int                 `json:"duration"`
	Targets  []TargetRef         `json:"targets"`
}

// EffectLedger holds the live persistent effects for one match.
type EffectLedger struct {
	effects []*StatEffect
}

func NewEffectLedger() *EffectLedger {
	return &EffectLedger{}
}

// Add registers a new effect. Effects with no remaining duration or no
// modifiers would never observably apply, so they are dropped up front.
func (l *EffectLedger) Add(move game.Move, mods []game.StatModifier, duration int, targets []TargetRef) *StatEffect {
	if duration <= 0 || len(mods) == 0 {
		return nil
	}
	e := &StatEffect{
		ID:       uuid.NewString(),
		Move:     move,
		Mods:     mods,
		Duration: duration,
		Targets:  targets,
	}
	l.effects = append(l.effects, e)
	return e
}

// Live returns the currently active effects.
func (l *EffectLedger) Live() []*StatEffect { return l.effects }

// Tick applies every live effect once and decrements durations; effects that
// just reached zero are removed in the same pass. It runs exactly once per
// round boundary, when no selections are pending. An effect therefore lasts
// for exactly `duration` applications, the first at the boundary immediately
// following its creation.
func (l *EffectLedger) Tick(decks map[game.Player]*Deck, round int) []Event {
	var events []Event
	kept := l.effects[:0]
	for _, e := range l.effects {
		for _, ref := range e.Targets {
			card := resolveEffectTarget(decks, ref)
			if card == nil {
				logging.Warn("persistent effect target unresolved", logging.Fields{
					"effect_id": e.ID,
					"move":      e.Move.Name,
					"target":    ref.DeckID,
				})
				continue
			}
			for _, mod := range e.Mods {
				if mod.Stat == game.StatHP {
					card.SetHP(card.HP() + mod.Amount)
				} else {
					card.CurrentStats.Add(mod.Stat, mod.Amount)
				}
				events = append(events, Event{
					Type:    EventEffectApplied,
					Round:   round,
					Actor:   card.DeckID,
					Move:    e.Move.Name,
					Stat:    mod.Stat,
					Amount:  mod.Amount,
					Player:  card.Player,
					Targets: []string{card.DeckID},
				})
			}
		}
		e.Duration--
		if e.Duration > 0 {
			kept = append(kept, e)
			continue
		}
		events = append(events, Event{
			Type:  EventEffectExpired,
			Round: round,
			Move:  e.Move.Name,
		})
	}
	l.effects = kept
	return events
}

// resolveEffectTarget re-resolves an effect binding against the live decks:
// deck-identity first, then the committed slot as fallback.
func resolveEffectTarget(decks map[game.Player]*Deck, ref TargetRef) *Card {
	if d, ok := decks[ref.Player]; ok {
		if c := d.ByID(ref.DeckID); c != nil {
			return c
		}
		if !ref.Self {
			return d.ActiveAt(ref.Slot)
		}
	}
	return nil
}
