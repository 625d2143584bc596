package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nishant2356/Card-game/internal/game"
)

func ledgerDecks() (map[game.Player]*Deck, *Card, *Card) {
	a := testCard(game.Player1, "p1a", "A", 100, 80)
	b := testCard(game.Player2, "p2a", "X", 100, 70)
	decks := map[game.Player]*Deck{
		game.Player1: NewDeck(game.Player1, []*Card{a}),
		game.Player2: NewDeck(game.Player2, []*Card{b}),
	}
	return decks, a, b
}

func TestEffectLedger_AddDropsInertEffects(t *testing.T) {
	l := NewEffectLedger()
	move := supportMove("Coil", []game.StatModifier{{Stat: game.StatSpeed, Amount: -10}}, 2)

	require.Nil(t, l.Add(move, move.AffectedStats, 0, nil))
	require.Nil(t, l.Add(move, nil, 2, nil))
	require.Empty(t, l.Live())

	require.NotNil(t, l.Add(move, move.AffectedStats, 2, nil))
	require.Len(t, l.Live(), 1)
}

func TestEffectLedger_TickAppliesExactlyDurationTimes(t *testing.T) {
	decks, _, target := ledgerDecks()
	l := NewEffectLedger()
	move := supportMove("Coil", []game.StatModifier{{Stat: game.StatSpeed, Amount: -10}}, 2)
	l.Add(move, move.AffectedStats, 2, []TargetRef{{DeckID: "p2a", Player: game.Player2, Slot: 0}})

	events := l.Tick(decks, 2)
	require.Equal(t, 60, target.Speed())
	require.Len(t, eventsOfType(events, EventEffectApplied), 1)
	require.Empty(t, eventsOfType(events, EventEffectExpired))
	require.Len(t, l.Live(), 1)

	events = l.Tick(decks, 3)
	require.Equal(t, 50, target.Speed())
	require.Len(t, eventsOfType(events, EventEffectExpired), 1)
	require.Empty(t, l.Live())

	// a third boundary must not apply the expired effect again
	events = l.Tick(decks, 4)
	require.Empty(t, events)
	require.Equal(t, 50, target.Speed())
}

func TestEffectLedger_HPModifiersClamp(t *testing.T) {
	decks, _, target := ledgerDecks()
	l := NewEffectLedger()

	poison := supportMove("Poison", []game.StatModifier{{Stat: game.StatHP, Amount: -60}}, 2)
	l.Add(poison, poison.AffectedStats, 2, []TargetRef{{DeckID: "p2a", Player: game.Player2, Slot: 0}})

	l.Tick(decks, 2)
	require.Equal(t, 40, target.HP())
	l.Tick(decks, 3)
	require.Equal(t, 0, target.HP())
	require.True(t, target.Fainted())

	regen := supportMove("Regen", []game.StatModifier{{Stat: game.StatHP, Amount: 500}}, 1)
	l.Add(regen, regen.AffectedStats, 1, []TargetRef{{DeckID: "p2a", Player: game.Player2, Slot: 0}})
	l.Tick(decks, 4)
	require.Equal(t, 100, target.HP())
}

func TestEffectLedger_FollowsBenchedTargetByIdentity(t *testing.T) {
	a := testCard(game.Player2, "p2a", "X", 100, 70)
	b := testCard(game.Player2, "p2b", "Y", 100, 50)
	c := testCard(game.Player2, "p2c", "Z", 100, 30)
	decks := map[game.Player]*Deck{
		game.Player1: NewDeck(game.Player1, nil),
		game.Player2: NewDeck(game.Player2, []*Card{a, b, c}),
	}

	l := NewEffectLedger()
	move := supportMove("Coil", []game.StatModifier{{Stat: game.StatSpeed, Amount: -10}}, 2)
	l.Add(move, move.AffectedStats, 2, []TargetRef{{DeckID: "p2a", Player: game.Player2, Slot: 0}})

	require.NoError(t, decks[game.Player2].Swap("p2c", 0))

	l.Tick(decks, 2)
	require.Equal(t, 60, a.Speed(), "benched target keeps its effect")
	require.Equal(t, 30, c.Speed(), "new slot occupant is untouched")
}
