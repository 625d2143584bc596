package battle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nishant2356/Card-game/internal/game"
)

func testRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func testCard(player game.Player, id, name string, hp, speed int) *Card {
	return &Card{
		DeckID:    id,
		Player:    player,
		Character: game.Character{Name: name},
		MaxHP:     hp,
		CurrentStats: game.Stats{
			game.StatHP:      hp,
			game.StatAttack:  50,
			game.StatDefense: 50,
			game.StatSpeed:   speed,
		},
	}
}

func newDuelState(p1, p2 []*Card) *State {
	return NewState(map[game.Player]*Deck{
		game.Player1: NewDeck(game.Player1, p1),
		game.Player2: NewDeck(game.Player2, p2),
	}, testRNG())
}

func damageMove(name string, power, accuracy int, tt game.TargetType) game.Move {
	return game.Move{
		Name:        name,
		Categories:  []string{game.CategoryTarget},
		Roles:       []string{string(game.RoleDamage)},
		Power:       power,
		Accuracy:    accuracy,
		TargetTypes: []string{string(tt)},
	}
}

func selfHealMove(name string, amount int) game.Move {
	return game.Move{
		Name:        name,
		Categories:  []string{game.CategoryTarget},
		Roles:       []string{string(game.RoleSelfHeal)},
		Accuracy:    100,
		HealAmount:  amount,
		TargetTypes: []string{string(game.TargetSelf)},
	}
}

func supportMove(name string, mods []game.StatModifier, duration int) game.Move {
	return game.Move{
		Name:          name,
		Categories:    []string{game.CategoryTarget},
		Roles:         []string{string(game.RoleSupport)},
		Accuracy:      100,
		AffectedStats: mods,
		Duration:      duration,
		TargetTypes:   []string{string(game.TargetSingle)},
	}
}

// selectFor commits a move for one actor, answering the target request when
// the move needs explicit picks.
func selectFor(t *testing.T, s *State, player game.Player, actorID string, move game.Move, targetIDs ...string) {
	t.Helper()
	req, err := s.SelectMove(actorID, player, &move)
	require.NoError(t, err)
	if req != nil {
		require.NoError(t, s.ChooseTargets(actorID, targetIDs))
	}
}

func eventsOfType(events []Event, typ EventType) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
