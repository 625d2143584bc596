package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nishant2356/Card-game/internal/game"
)

func oneVOne(p1HP, p1Speed, p2HP, p2Speed int) (*State, *Card, *Card) {
	a := testCard(game.Player1, "p1a", "A", p1HP, p1Speed)
	b := testCard(game.Player2, "p2a", "X", p2HP, p2Speed)
	return newDuelState([]*Card{a}, []*Card{b}), a, b
}

func TestRound_BasicDamage(t *testing.T) {
	s, attacker, defender := oneVOne(100, 90, 100, 40)

	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 30, 100, game.TargetSingle), "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)

	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 0))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 70, defender.HP())
	require.Equal(t, 100, attacker.HP())

	damage := eventsOfType(events, EventDamage)
	require.Len(t, damage, 1)
	require.Equal(t, 30, damage[0].Amount)
	require.Equal(t, []string{"p2a"}, damage[0].Targets)

	require.Equal(t, 2, s.Round())
	require.Equal(t, PhasePlayer1Selecting, s.Phase())
}

func TestRound_SelfHeal(t *testing.T) {
	s, healer, _ := oneVOne(100, 90, 100, 40)
	healer.SetHP(50)

	selectFor(t, s, game.Player1, "p1a", selfHealMove("Rest", 20))
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 20))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 70, healer.HP())
	require.Len(t, eventsOfType(events, EventHeal), 2)
}

func TestRound_SelfHealClampsAtMax(t *testing.T) {
	s, healer, _ := oneVOne(100, 90, 100, 40)
	healer.SetHP(95)

	selectFor(t, s, game.Player1, "p1a", selfHealMove("Rest", 20))
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)

	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 20))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 100, healer.HP())
	heals := eventsOfType(events, EventHeal)
	require.Len(t, heals, 2)
}

func TestRound_SwappedInOccupantTakesCommittedSlotHit(t *testing.T) {
	s, _, p2 := twoVTwo()

	// Player 1 commits a hit on opposing slot 0, then Player 2 swaps a
	// benched card into that slot before confirming. The slot commitment
	// means the new occupant takes the damage.
	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 30, 100, game.TargetSingle), "p2a")
	selectFor(t, s, game.Player1, "p1b", selfHealMove("Rest", 0))
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)

	require.NoError(t, s.Swap(game.Player2, "p2c", 0))
	selectFor(t, s, game.Player2, "p2c", selfHealMove("Rest", 0))
	selectFor(t, s, game.Player2, "p2b", selfHealMove("Rest", 0))
	_, err = s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 70, p2[2].HP(), "new slot occupant takes the hit")
	require.Equal(t, 100, p2[0].HP(), "originally chosen card is untouched on the bench")
}

func TestRound_FasterActorActsFirst(t *testing.T) {
	s, _, _ := oneVOne(100, 80, 100, 50)

	// Player 2's selection is committed last but its actor is not faster,
	// so Player 1 still opens the round.
	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 10, 100, game.TargetSingle), "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", damageMove("Bite", 10, 100, game.TargetSingle), "p1a")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	started := eventsOfType(events, EventActionStarted)
	require.Len(t, started, 2)
	require.Equal(t, "p1a", started[0].Actor)
	require.Equal(t, "p2a", started[1].Actor)
}

func TestRound_FaintedActorActionSkipped(t *testing.T) {
	s, _, defender := oneVOne(100, 90, 30, 40)

	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 30, 100, game.TargetSingle), "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", damageMove("Bite", 10, 100, game.TargetSingle), "p1a")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.True(t, defender.Fainted())
	require.Len(t, eventsOfType(events, EventFainted), 1)

	skipped := eventsOfType(events, EventActionSkipped)
	require.Len(t, skipped, 1)
	require.Equal(t, "p2a", skipped[0].Actor)

	ended := eventsOfType(events, EventMatchEnded)
	require.Len(t, ended, 1)
	require.Equal(t, game.Player1, ended[0].Winner)

	over, winner, tie := s.Over()
	require.True(t, over)
	require.Equal(t, game.Player1, winner)
	require.False(t, tie)
	require.Equal(t, PhaseFinished, s.Phase())
}

func TestRound_MatchEndReportedOnce(t *testing.T) {
	a := testCard(game.Player1, "p1a", "A", 100, 80)
	b := testCard(game.Player1, "p1b", "B", 100, 60)
	x := testCard(game.Player2, "p2a", "X", 5, 40)
	s := newDuelState([]*Card{a, b}, []*Card{x})

	// both of Player 1's actions hit slot 0; the first one already wins
	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 30, 100, game.TargetSingle), "p2a")
	selectFor(t, s, game.Player1, "p1b", damageMove("Jab", 30, 100, game.TargetSingle), "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", damageMove("Bite", 5, 100, game.TargetSingle), "p1a")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Len(t, eventsOfType(events, EventMatchEnded), 1)
	require.Len(t, eventsOfType(events, EventFainted), 1)
	require.Equal(t, 0, x.HP())
	require.Equal(t, PhaseFinished, s.Phase())
}

func TestRound_MissChangesNothing(t *testing.T) {
	s, attacker, defender := oneVOne(100, 90, 100, 40)

	selectFor(t, s, game.Player1, "p1a", damageMove("Wild Swing", 50, 0, game.TargetSingle), "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	miss := supportMove("Hex", []game.StatModifier{{Stat: game.StatAttack, Amount: -10}}, 3)
	miss.Accuracy = 0
	selectFor(t, s, game.Player2, "p2a", miss, "p1a")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 100, attacker.HP())
	require.Equal(t, 100, defender.HP())
	require.Equal(t, 50, attacker.CurrentStats.Get(game.StatAttack))
	require.Empty(t, s.Ledger().Live())

	// a miss consumes the actor's turn; both actions still appear in order
	require.Len(t, eventsOfType(events, EventActionMissed), 2)
	require.Len(t, eventsOfType(events, EventActionStarted), 2)
	require.Empty(t, eventsOfType(events, EventDamage))
}

func TestRound_EveryActionExecutesExactlyOnce(t *testing.T) {
	s, _, _ := twoVTwo()

	selectFor(t, s, game.Player1, "p1a", damageMove("Slash", 5, 100, game.TargetSingle), "p2a")
	selectFor(t, s, game.Player1, "p1b", damageMove("Jab", 5, 100, game.TargetSingle), "p2b")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)

	selectFor(t, s, game.Player2, "p2a", damageMove("Bite", 5, 100, game.TargetSingle), "p1a")
	selectFor(t, s, game.Player2, "p2b", damageMove("Claw", 5, 100, game.TargetSingle), "p1b")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	started := eventsOfType(events, EventActionStarted)
	require.Len(t, started, 4)
	seen := make(map[string]int)
	for _, e := range started {
		seen[e.Actor]++
	}
	// highest live speed first: p1a(80), p2a(70), p1b(60), p2b(50)
	require.Equal(t, map[string]int{"p1a": 1, "p1b": 1, "p2a": 1, "p2b": 1}, seen)
	require.Equal(t, "p1a", started[0].Actor)
	require.Equal(t, "p2a", started[1].Actor)
	require.Equal(t, "p1b", started[2].Actor)
	require.Equal(t, "p2b", started[3].Actor)
}

func TestRound_SupportEffectAppliesAtNextBoundary(t *testing.T) {
	s, _, defender := oneVOne(100, 90, 100, 40)

	coil := supportMove("Coil", []game.StatModifier{{Stat: game.StatSpeed, Amount: -10}}, 1)
	selectFor(t, s, game.Player1, "p1a", coil, "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 0))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Len(t, eventsOfType(events, EventEffectCreated), 1)
	require.Len(t, eventsOfType(events, EventEffectApplied), 1)
	require.Len(t, eventsOfType(events, EventEffectExpired), 1)
	require.Equal(t, 30, defender.Speed())
	require.Empty(t, s.Ledger().Live())
	require.Equal(t, 2, s.Round())
}

func TestRound_MutualLethalEffectsEndInTie(t *testing.T) {
	s, attacker, defender := oneVOne(100, 90, 100, 40)

	venom := supportMove("Venom", []game.StatModifier{{Stat: game.StatHP, Amount: -150}}, 1)
	selectFor(t, s, game.Player1, "p1a", venom, "p2a")
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", venom, "p1a")
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.True(t, attacker.Fainted())
	require.True(t, defender.Fainted())

	ended := eventsOfType(events, EventMatchEnded)
	require.Len(t, ended, 1)
	require.True(t, ended[0].Tie)
	require.Empty(t, ended[0].Winner)

	over, winner, tie := s.Over()
	require.True(t, over)
	require.True(t, tie)
	require.Empty(t, winner)
	require.Equal(t, PhaseFinished, s.Phase())
}

func TestRound_SelfSupportAndPartyRoles(t *testing.T) {
	s, p1, _ := twoVTwo()

	sharpen := game.Move{
		Name:           "Sharpen",
		Categories:     []string{game.CategoryTarget},
		Roles:          []string{string(game.RoleSelfSupport)},
		Accuracy:       100,
		AffectedStats2: []game.StatModifier{{Stat: game.StatAttack, Amount: 15}},
		Duration:       1,
		TargetTypes:    []string{string(game.TargetSelf)},
	}
	rally := game.Move{
		Name:           "Rally",
		Categories:     []string{game.CategoryTarget},
		Roles:          []string{string(game.RoleSupportPartyMember)},
		Accuracy:       100,
		AffectedStats2: []game.StatModifier{{Stat: game.StatDefense, Amount: 10}},
		Duration:       1,
		TargetTypes:    []string{string(game.TargetSelf)},
	}

	selectFor(t, s, game.Player1, "p1a", sharpen)
	selectFor(t, s, game.Player1, "p1b", rally)
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 0))
	selectFor(t, s, game.Player2, "p2b", selfHealMove("Rest", 0))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Len(t, eventsOfType(events, EventEffectCreated), 2)
	require.Equal(t, 65, p1[0].CurrentStats.Get(game.StatAttack), "selfsupport lands on the actor")
	require.Equal(t, 60, p1[0].CurrentStats.Get(game.StatDefense), "party support lands on the other active slot")
	require.Equal(t, 50, p1[1].CurrentStats.Get(game.StatDefense))
}

func TestRound_HealPartyMember(t *testing.T) {
	s, p1, _ := twoVTwo()
	p1[1].SetHP(40)

	mend := game.Move{
		Name:        "Mend",
		Categories:  []string{game.CategoryTarget},
		Roles:       []string{string(game.RoleHealPartyMember)},
		Accuracy:    100,
		HealAmount:  25,
		TargetTypes: []string{string(game.TargetSelf)},
	}

	selectFor(t, s, game.Player1, "p1a", mend)
	selectFor(t, s, game.Player1, "p1b", selfHealMove("Rest", 0))
	_, err := s.ConfirmSelections(game.Player1)
	require.NoError(t, err)
	selectFor(t, s, game.Player2, "p2a", selfHealMove("Rest", 0))
	selectFor(t, s, game.Player2, "p2b", selfHealMove("Rest", 0))
	events, err := s.ConfirmSelections(game.Player2)
	require.NoError(t, err)

	require.Equal(t, 65, p1[1].HP())
	heals := eventsOfType(events, EventHeal)
	require.NotEmpty(t, heals)
	require.Equal(t, []string{"p1b"}, heals[0].Targets)
}

func TestResolveTargets_SlotCommitmentFollowsOccupant(t *testing.T) {
	s, _, p2 := twoVTwo()
	actor := s.Deck(game.Player1).ActiveAt(0)

	ref := TargetRef{DeckID: "p2a", Player: game.Player2, Slot: 0}
	before := s.resolveTargets(actor, []TargetRef{ref})
	require.Len(t, before, 1)
	require.Equal(t, "p2a", before[0].DeckID)

	require.NoError(t, s.Deck(game.Player2).Swap("p2c", 0))
	after := s.resolveTargets(actor, []TargetRef{ref})
	require.Len(t, after, 1)
	require.Equal(t, "p2c", after[0].DeckID, "slot target resolves to the new occupant")
	require.Equal(t, p2[2], after[0])
}

func TestResolveTargets_SelfFollowsIdentity(t *testing.T) {
	s, p1, _ := twoVTwo()
	actor := s.Deck(game.Player1).ActiveAt(0)

	require.NoError(t, s.Deck(game.Player1).Swap("p1c", 0))
	out := s.resolveTargets(actor, []TargetRef{{DeckID: actor.DeckID, Player: game.Player1, Self: true}})
	require.Len(t, out, 1)
	require.Equal(t, p1[0], out[0], "self target stays bound to the actor after a swap")
}
