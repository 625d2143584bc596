package battle

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/keys"
)

// ActiveSlots is the number of front-line positions per deck. Occupants of
// slots [0, ActiveSlots) act and can be targeted; the rest are benched.
const ActiveSlots = 2

var (
	ErrEmptyBench     = errors.New("bench is empty")
	ErrInvalidSlot    = errors.New("invalid active slot")
	ErrCardNotBenched = errors.New("card is not benched")
	ErrUnknownCard    = errors.New("unknown card")
)

// Card is one mutable battle instance wrapping an immutable character
// snapshot. DeckID is its stable identity for the whole match, independent
// of the slot it currently occupies.
type Card struct {
	DeckID       string         `json:"deckid"`
	Player       game.Player    `json:"player"`
	Character    game.Character `json:"character"`
	MaxHP        int            `json:"maxHP"`
	CurrentStats game.Stats     `json:"currentStats"`
}

// HP returns the card's current hit points.
func (c *Card) HP() int { return c.CurrentStats.Get(game.StatHP) }

// Fainted reports whether the card is out of the fight.
func (c *Card) Fainted() bool { return c.HP() <= 0 }

// Speed returns the card's live speed stat, the dynamic ordering key.
func (c *Card) Speed() int { return c.CurrentStats.Get(game.StatSpeed) }

// SetHP stores hp clamped into [0, MaxHP]. Every HP write funnels through
// here so the bound invariant holds at all observation points.
func (c *Card) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.MaxHP {
		hp = c.MaxHP
	}
	c.CurrentStats[game.StatHP] = hp
}

// Damage lowers HP by amount, floored at zero.
func (c *Card) Damage(amount int) { c.SetHP(c.HP() - amount) }

// Heal raises HP by amount, capped at MaxHP.
func (c *Card) Heal(amount int) { c.SetHP(c.HP() + amount) }

// Deck is one player's ordered card sequence. Indices [0, ActiveSlots) are
// the active slots; the remainder is the bench.
type Deck struct {
	player game.Player
	cards  []*Card
}

func NewDeck(player game.Player, cards []*Card) *Deck {
	owned := make([]*Card, len(cards))
	copy(owned, cards)
	return &Deck{player: player, cards: owned}
}

func (d *Deck) Player() game.Player { return d.player }

func (d *Deck) Len() int { return len(d.cards) }

// Cards returns the underlying order. Callers must not reorder it; swaps go
// through Swap so slot semantics stay intact.
func (d *Deck) Cards() []*Card { return d.cards }

// ActiveAt returns the current occupant of the given active slot, or nil
// when the slot is out of range or the deck is too short.
func (d *Deck) ActiveAt(slot int) *Card {
	if slot < 0 || slot >= ActiveSlots || slot >= len(d.cards) {
		return nil
	}
	return d.cards[slot]
}

// Active returns the occupied active slots in slot order.
func (d *Deck) Active() []*Card {
	n := ActiveSlots
	if len(d.cards) < n {
		n = len(d.cards)
	}
	return d.cards[:n]
}

// Benched returns the cards outside the active slots.
func (d *Deck) Benched() []*Card {
	if len(d.cards) <= ActiveSlots {
		return nil
	}
	return d.cards[ActiveSlots:]
}

// ByID finds a card by deck-identity.
func (d *Deck) ByID(id string) *Card {
	for _, c := range d.cards {
		if c.DeckID == id {
			return c
		}
	}
	return nil
}

// SlotOf returns the index the card currently occupies.
func (d *Deck) SlotOf(id string) (int, bool) {
	for i, c := range d.cards {
		if c.DeckID == id {
			return i, true
		}
	}
	return 0, false
}

// Swap atomically exchanges a benched card with the occupant of the given
// active slot. Identities are preserved; any target committed to the slot
// will resolve to the new occupant afterwards.
func (d *Deck) Swap(benchedID string, activeSlot int) error {
	if len(d.Benched()) == 0 {
		return ErrEmptyBench
	}
	if activeSlot < 0 || activeSlot >= ActiveSlots || activeSlot >= len(d.cards) {
		return ErrInvalidSlot
	}
	idx, ok := d.SlotOf(benchedID)
	if !ok {
		return ErrUnknownCard
	}
	if idx < ActiveSlots {
		return ErrCardNotBenched
	}
	d.cards[activeSlot], d.cards[idx] = d.cards[idx], d.cards[activeSlot]
	return nil
}

// FaintedMap is the per-identity fainted view, recomputed from live HP.
func (d *Deck) FaintedMap() map[string]bool {
	out := make(map[string]bool, len(d.cards))
	for _, c := range d.cards {
		out[c.DeckID] = c.Fainted()
	}
	return out
}

// Survivors counts cards with hp > 0. The win monitor watches this.
func (d *Deck) Survivors() int {
	n := 0
	for _, c := range d.cards {
		if !c.Fainted() {
			n++
		}
	}
	return n
}

// ActiveUnfainted counts active-slot occupants still able to act. A player's
// selection is complete when it covers exactly this many cards.
func (d *Deck) ActiveUnfainted() int {
	n := 0
	for _, c := range d.Active() {
		if !c.Fainted() {
			n++
		}
	}
	return n
}

// Catalog is the read-only collaborator hydration joins against.
type Catalog interface {
	CharactersByName(names []string) ([]game.Character, error)
	MovesByName(names []string) ([]game.Move, error)
}

// HydrateDecks builds both decks from stored team selections. Missing team
// data yields an empty deck for that side without error; characters or moves
// absent from the catalog are silently dropped. Move definitions are batch
// fetched once, deduplicated across both teams, so battle code never works
// from the shallow team-building shape.
func HydrateDecks(teams []game.TeamSelection, cat Catalog) (map[game.Player]*Deck, error) {
	decks := map[game.Player]*Deck{
		game.Player1: NewDeck(game.Player1, nil),
		game.Player2: NewDeck(game.Player2, nil),
	}
	if len(teams) == 0 {
		return decks, nil
	}

	var charNames, moveNames []string
	for _, t := range teams {
		for _, tc := range t.Characters {
			charNames = append(charNames, tc.Name)
			for _, mr := range tc.Moves {
				moveNames = append(moveNames, mr.Name)
			}
		}
	}

	chars, err := cat.CharactersByName(charNames)
	if err != nil {
		return nil, err
	}
	moves, err := cat.MovesByName(moveNames)
	if err != nil {
		return nil, err
	}

	charByKey := make(map[string]game.Character, len(chars))
	for _, ch := range chars {
		charByKey[keys.NameKey(ch.Name)] = ch
	}
	moveByKey := make(map[string]game.Move, len(moves))
	for _, m := range moves {
		moveByKey[keys.NameKey(m.Name)] = m
	}

	for _, t := range teams {
		cards := make([]*Card, 0, len(t.Characters))
		for _, tc := range t.Characters {
			ch, ok := charByKey[keys.NameKey(tc.Name)]
			if !ok {
				continue
			}
			snapshot := ch
			snapshot.SelectedMoves = nil
			for _, mr := range tc.Moves {
				if full, ok := moveByKey[keys.NameKey(mr.Name)]; ok {
					snapshot.SelectedMoves = append(snapshot.SelectedMoves, full)
				}
			}
			cards = append(cards, &Card{
				DeckID:       uuid.NewString(),
				Player:       t.Player,
				Character:    snapshot,
				MaxHP:        ch.Stats.Get(game.StatHP),
				CurrentStats: ch.Stats.Clone(),
			})
		}
		decks[t.Player] = NewDeck(t.Player, cards)
	}
	return decks, nil
}
