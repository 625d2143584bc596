package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nishant2356/Card-game/internal/game"
)

func TestCard_SetHPClamps(t *testing.T) {
	c := testCard(game.Player1, "a", "A", 100, 50)

	c.Damage(30)
	require.Equal(t, 70, c.HP())

	c.Damage(1000)
	require.Equal(t, 0, c.HP())
	require.True(t, c.Fainted())

	c.Heal(40)
	require.Equal(t, 40, c.HP())
	require.False(t, c.Fainted())

	c.Heal(1000)
	require.Equal(t, 100, c.HP())
}

func TestDeck_SwapExchangesSlots(t *testing.T) {
	a := testCard(game.Player1, "a", "A", 100, 50)
	b := testCard(game.Player1, "b", "B", 100, 50)
	c := testCard(game.Player1, "c", "C", 100, 50)
	d := NewDeck(game.Player1, []*Card{a, b, c})

	require.NoError(t, d.Swap("c", 0))
	require.Equal(t, "c", d.ActiveAt(0).DeckID)
	require.Equal(t, "b", d.ActiveAt(1).DeckID)

	slot, ok := d.SlotOf("a")
	require.True(t, ok)
	require.Equal(t, 2, slot)
}

func TestDeck_SwapRejectsBadArguments(t *testing.T) {
	a := testCard(game.Player1, "a", "A", 100, 50)
	b := testCard(game.Player1, "b", "B", 100, 50)
	c := testCard(game.Player1, "c", "C", 100, 50)
	d := NewDeck(game.Player1, []*Card{a, b, c})

	require.ErrorIs(t, d.Swap("c", 5), ErrInvalidSlot)
	require.ErrorIs(t, d.Swap("c", -1), ErrInvalidSlot)
	require.ErrorIs(t, d.Swap("b", 0), ErrCardNotBenched)
	require.ErrorIs(t, d.Swap("zz", 0), ErrUnknownCard)

	empty := NewDeck(game.Player1, []*Card{a, b})
	require.ErrorIs(t, empty.Swap("b", 0), ErrEmptyBench)
}

func TestDeck_Counters(t *testing.T) {
	a := testCard(game.Player1, "a", "A", 100, 50)
	b := testCard(game.Player1, "b", "B", 100, 50)
	c := testCard(game.Player1, "c", "C", 100, 50)
	d := NewDeck(game.Player1, []*Card{a, b, c})

	require.Equal(t, 3, d.Survivors())
	require.Equal(t, 2, d.ActiveUnfainted())

	b.SetHP(0)
	require.Equal(t, 2, d.Survivors())
	require.Equal(t, 1, d.ActiveUnfainted())

	c.SetHP(0)
	require.Equal(t, 1, d.Survivors())
	require.Equal(t, 1, d.ActiveUnfainted())

	fm := d.FaintedMap()
	require.False(t, fm["a"])
	require.True(t, fm["b"])
	require.True(t, fm["c"])
}

type fakeCatalog struct {
	characters []game.Character
	moves      []game.Move
}

func (f *fakeCatalog) CharactersByName(names []string) ([]game.Character, error) {
	return f.characters, nil
}

func (f *fakeCatalog) MovesByName(names []string) ([]game.Move, error) {
	return f.moves, nil
}

func TestHydrateDecks_ResolvesCatalogEntries(t *testing.T) {
	cat := &fakeCatalog{
		characters: []game.Character{
			{Name: "Zenitsu", Stats: game.Stats{game.StatHP: 90, game.StatSpeed: 99}},
			{Name: "Doma", Stats: game.Stats{game.StatHP: 99, game.StatSpeed: 96}},
		},
		moves: []game.Move{
			{Name: "Thunderclap", Power: 80},
		},
	}
	teams := []game.TeamSelection{
		{
			Player: game.Player1,
			Characters: []game.TeamCharacter{
				{Name: "Zenitsu", Moves: []game.MoveRef{{Name: "Thunderclap"}, {Name: "Not In Catalog"}}},
				{Name: "Missing Character"},
			},
		},
		{
			Player:     game.Player2,
			Characters: []game.TeamCharacter{{Name: "Doma"}},
		},
	}

	decks, err := HydrateDecks(teams, cat)
	require.NoError(t, err)

	p1 := decks[game.Player1]
	require.Equal(t, 1, p1.Len())
	card := p1.ActiveAt(0)
	require.NotEmpty(t, card.DeckID)
	require.Equal(t, game.Player1, card.Player)
	require.Equal(t, 90, card.MaxHP)
	require.Equal(t, 90, card.HP())
	require.Len(t, card.Character.SelectedMoves, 1)
	require.Equal(t, "Thunderclap", card.Character.SelectedMoves[0].Name)

	// per-card stats are an independent copy of the catalog row
	card.Damage(10)
	require.Equal(t, 90, cat.characters[0].Stats.Get(game.StatHP))

	require.Equal(t, 1, decks[game.Player2].Len())
}

func TestHydrateDecks_EmptyTeams(t *testing.T) {
	decks, err := HydrateDecks(nil, &fakeCatalog{})
	require.NoError(t, err)
	require.Equal(t, 0, decks[game.Player1].Len())
	require.Equal(t, 0, decks[game.Player2].Len())
}
