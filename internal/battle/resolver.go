package battle

import (
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/logging"
)

// resolveRound executes the combined action list to completion, mutating
// both decks and returning the ordered presentation event log. It is
// synchronous and owns all shared state while it runs; pacing and playback
// belong to the consumer replaying the log.
func (s *State) resolveRound() []Event {
	events := []Event{{Type: EventRoundStarted, Round: s.round}}

	remaining := s.Selections()
	for len(remaining) > 0 {
		idx := s.fastestIndex(remaining)
		action := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		actor := s.findCard(action.ActorID)
		if actor == nil || actor.Fainted() {
			// the actor was defeated by an earlier action this round
			events = append(events, Event{
				Type:  EventActionSkipped,
				Round: s.round,
				Actor: action.ActorID,
				Move:  action.Move.Name,
			})
			continue
		}

		targets := s.resolveTargets(actor, action.Targets)
		targetIDs := make([]string, 0, len(targets))
		for _, t := range targets {
			targetIDs = append(targetIDs, t.DeckID)
		}
		events = append(events, Event{
			Type:      EventActionStarted,
			Round:     s.round,
			Actor:     actor.DeckID,
			ActorName: actor.Character.Name,
			Player:    actor.Player,
			Move:      action.Move.Name,
			Targets:   targetIDs,
		})

		if !s.hitRoll(action.Move) {
			// a miss has no effect but still consumed its order slot
			events = append(events, Event{
				Type:   EventActionMissed,
				Round:  s.round,
				Actor:  actor.DeckID,
				Player: actor.Player,
				Move:   action.Move.Name,
			})
			continue
		}

		if !action.Move.HasCategory(game.CategoryTarget) {
			logging.Warn("move has no implemented category", logging.Fields{
				"move":       action.Move.Name,
				"categories": action.Move.Categories,
			})
			continue
		}

		events = append(events, s.processRoles(actor, action, targets)...)

		// republish both decks before the next action so observers (win
		// monitor, UI) see fully committed effects
		events = append(events, Event{
			Type:  EventDeckUpdate,
			Round: s.round,
			Decks: map[game.Player][]CardSnapshot{
				game.Player1: snapshotDeck(s.decks[game.Player1]),
				game.Player2: snapshotDeck(s.decks[game.Player2]),
			},
		})
		// the match ends at most once; later actions must not re-report it
		if !s.over {
			if ended := s.checkWin(s.round); ended != nil {
				events = append(events, *ended)
			}
		}
	}

	return events
}

// fastestIndex picks the action whose actor has the highest live speed.
// Ties keep the first-encountered action; selection order is the stable
// fallback, never randomized. Actors missing from the decks sort last so
// they are consumed (and skipped) deterministically.
func (s *State) fastestIndex(remaining []*SelectedMove) int {
	best := 0
	bestSpeed := -1
	for i, sel := range remaining {
		speed := -1
		if c := s.findCard(sel.ActorID); c != nil {
			speed = c.Speed()
		}
		if speed > bestSpeed {
			best = i
			bestSpeed = speed
		}
	}
	return best
}

// resolveTargets produces the authoritative target set for one action:
// self-referential entries resolve to the actor itself, everything else
// re-resolves its committed slot against the current deck state.
func (s *State) resolveTargets(actor *Card, refs []TargetRef) []*Card {
	out := make([]*Card, 0, len(refs))
	for _, ref := range refs {
		if ref.Self {
			out = append(out, actor)
			continue
		}
		if c := s.decks[ref.Player].ActiveAt(ref.Slot); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (s *State) hitRoll(move game.Move) bool {
	return s.rng.Float64()*100 < float64(move.Accuracy)
}

// processRoles walks the move's role list in declared order. Every role is
// fully independent: one finding no valid target is skipped with a warning
// and must not abort the rest.
func (s *State) processRoles(actor *Card, action *SelectedMove, targets []*Card) []Event {
	var events []Event
	for _, raw := range action.Move.Roles {
		role, ok := game.ParseRole(raw)
		if !ok {
			logging.Warn("unknown move role", logging.Fields{"move": action.Move.Name, "role": raw})
			continue
		}
		switch role {
		case game.RoleDamage:
			for _, t := range targets {
				wasFainted := t.Fainted()
				t.Damage(action.Move.Power)
				events = append(events, Event{
					Type:    EventDamage,
					Round:   s.round,
					Actor:   actor.DeckID,
					Move:    action.Move.Name,
					Targets: []string{t.DeckID},
					Amount:  action.Move.Power,
					Player:  t.Player,
				})
				if !wasFainted && t.Fainted() {
					events = append(events, Event{
						Type:    EventFainted,
						Round:   s.round,
						Player:  t.Player,
						Targets: []string{t.DeckID},
					})
				}
			}
		case game.RoleSupport:
			if e := s.ledger.Add(action.Move, action.Move.AffectedStats, action.Move.Duration, action.Targets); e != nil {
				events = append(events, Event{
					Type:  EventEffectCreated,
					Round: s.round,
					Actor: actor.DeckID,
					Move:  action.Move.Name,
				})
			}
		case game.RoleSelfHeal:
			actor.Heal(action.Move.HealAmount)
			events = append(events, Event{
				Type:    EventHeal,
				Round:   s.round,
				Actor:   actor.DeckID,
				Move:    action.Move.Name,
				Targets: []string{actor.DeckID},
				Amount:  action.Move.HealAmount,
				Player:  actor.Player,
			})
		case game.RoleHealPartyMember:
			member := s.firstOtherMember(actor)
			if member == nil {
				logging.Warn("no party member to heal", logging.Fields{"move": action.Move.Name, "actor": actor.DeckID})
				continue
			}
			member.Heal(action.Move.HealAmount)
			events = append(events, Event{
				Type:    EventHeal,
				Round:   s.round,
				Actor:   actor.DeckID,
				Move:    action.Move.Name,
				Targets: []string{member.DeckID},
				Amount:  action.Move.HealAmount,
				Player:  member.Player,
			})
		case game.RoleSelfSupport:
			if e := s.ledger.Add(action.Move, action.Move.AffectedStats2, action.Move.Duration, []TargetRef{selfRef(actor)}); e != nil {
				events = append(events, Event{
					Type:    EventEffectCreated,
					Round:   s.round,
					Actor:   actor.DeckID,
					Move:    action.Move.Name,
					Targets: []string{actor.DeckID},
				})
			}
		case game.RoleSupportPartyMember:
			member := s.activePartyMember(actor)
			if member == nil {
				logging.Warn("no active party member to support", logging.Fields{"move": action.Move.Name, "actor": actor.DeckID})
				continue
			}
			if e := s.ledger.Add(action.Move, action.Move.AffectedStats2, action.Move.Duration, []TargetRef{s.slotRef(member)}); e != nil {
				events = append(events, Event{
					Type:    EventEffectCreated,
					Round:   s.round,
					Actor:   actor.DeckID,
					Move:    action.Move.Name,
					Targets: []string{member.DeckID},
				})
			}
		}
	}
	return events
}

// firstOtherMember returns the first deck member other than the actor,
// read from the live, mutating deck.
func (s *State) firstOtherMember(actor *Card) *Card {
	for _, c := range s.decks[actor.Player].Cards() {
		if c.DeckID != actor.DeckID {
			return c
		}
	}
	return nil
}

// activePartyMember returns the occupant of the actor's other active slot.
func (s *State) activePartyMember(actor *Card) *Card {
	for _, c := range s.decks[actor.Player].Active() {
		if c.DeckID != actor.DeckID {
			return c
		}
	}
	return nil
}
