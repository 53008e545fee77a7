package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{ID: NewPlayerID(), Name: "P", JoinedAt: time.Now().UnixMilli()}
	}
	return players
}

func countImposters(players []*Player) int {
	n := 0
	for _, p := range players {
		if p.IsImposter {
			n++
		}
	}
	return n
}

func TestRollTrollEvent_ZeroChance(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TrollChance = 0
	for range 50 {
		assert.Equal(t, TrollNone, RollTrollEvent(&s))
	}
}

func TestRollTrollEvent_NoEnabledEvents(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TrollChance = 100
	s.EnabledTrollEvents = nil
	for range 50 {
		assert.Equal(t, TrollNone, RollTrollEvent(&s))
	}
}

func TestRollTrollEvent_CertainSingleEvent(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TrollChance = 100
	s.EnabledTrollEvents = []TrollEvent{TrollNoImposters}
	for range 50 {
		assert.Equal(t, TrollNoImposters, RollTrollEvent(&s))
	}
}

func TestRollTrollEvent_OnlyEnabledEventsFire(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TrollChance = 100
	s.EnabledTrollEvents = []TrollEvent{TrollExtraImposter, TrollDifferentPlayers}
	for range 100 {
		ev := RollTrollEvent(&s)
		assert.Contains(t, s.EnabledTrollEvents, ev)
	}
}

func TestClampImposterCount(t *testing.T) {
	t.Parallel()

	// 5 players, no troll events: cap at 3.
	assert.Equal(t, 3, ClampImposterCount(4, 5, false))
	// With troll events enabled the cap leaves headroom for the extra
	// imposter event.
	assert.Equal(t, 2, ClampImposterCount(4, 5, true))
	// Never below 1.
	assert.Equal(t, 1, ClampImposterCount(0, 3, false))
	assert.Equal(t, 1, ClampImposterCount(1, 3, true))
	// In range stays untouched.
	assert.Equal(t, 2, ClampImposterCount(2, 6, false))
}

func TestEffectiveImposterCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, EffectiveImposterCount(2, 5, TrollNone))
	assert.Equal(t, 3, EffectiveImposterCount(2, 5, TrollExtraImposter))
	// Capped at playerCount-1.
	assert.Equal(t, 4, EffectiveImposterCount(4, 5, TrollExtraImposter))
	assert.Equal(t, 5, EffectiveImposterCount(1, 5, TrollAllImposters))
	assert.Equal(t, 0, EffectiveImposterCount(3, 5, TrollNoImposters))
	assert.Equal(t, 2, EffectiveImposterCount(2, 5, TrollDifferentPlayers))
}

func TestAssignRoles_ResetsPriorState(t *testing.T) {
	t.Parallel()

	players := makePlayers(4)
	players[0].IsImposter = true
	players[1].HasRevealed = true
	players[2].VotedFor = players[0].ID

	AssignRoles(players, 1, TrollNoImposters)

	for _, p := range players {
		assert.False(t, p.IsImposter)
		assert.False(t, p.HasRevealed)
		assert.Empty(t, p.VotedFor)
		assert.Nil(t, p.SecretPlayer)
	}
}

func TestAssignRoles_CountBounds(t *testing.T) {
	t.Parallel()

	for range 50 {
		players := makePlayers(5)
		AssignRoles(players, 2, TrollNone)
		assert.Equal(t, 2, countImposters(players))
	}

	players := makePlayers(5)
	AssignRoles(players, 2, TrollAllImposters)
	assert.Equal(t, 5, countImposters(players))

	AssignRoles(players, 2, TrollNoImposters)
	assert.Equal(t, 0, countImposters(players))

	for range 50 {
		players := makePlayers(5)
		AssignRoles(players, 4, TrollExtraImposter)
		// Never every player under extraImposter.
		assert.Equal(t, 4, countImposters(players))
	}
}

func TestAssignRoles_ImpostersAreDistinct(t *testing.T) {
	t.Parallel()

	// With count == len-1, a draw with replacement would sometimes mark
	// fewer players; distinct draws always mark exactly count.
	for range 100 {
		players := makePlayers(6)
		AssignRoles(players, 5, TrollNone)
		assert.Equal(t, 5, countImposters(players))
	}
}

func TestSelectStartingPlayer_Uniform(t *testing.T) {
	t.Parallel()

	players := makePlayers(4)
	seen := make(map[string]bool)
	for range 200 {
		id := SelectStartingPlayer(players, false)
		require.NotEmpty(t, id)
		seen[id] = true
	}
	// Every player should be picked at least once over 200 draws.
	assert.Len(t, seen, 4)
}

func TestSelectStartingPlayer_WeightedAgainstImposters(t *testing.T) {
	t.Parallel()

	players := makePlayers(2)
	players[0].IsImposter = true

	imposterStarts := 0
	const draws = 3000
	for range draws {
		if SelectStartingPlayer(players, true) == players[0].ID {
			imposterStarts++
		}
	}

	// Expected ratio 1/3 with weights 1:2; allow generous slack.
	ratio := float64(imposterStarts) / draws
	assert.Greater(t, ratio, 0.2)
	assert.Less(t, ratio, 0.47)
}

func TestSelectStartingPlayer_DegenerateRosters(t *testing.T) {
	t.Parallel()

	// All imposters: weighting degenerates to uniform.
	players := makePlayers(3)
	for _, p := range players {
		p.IsImposter = true
	}
	seen := make(map[string]bool)
	for range 200 {
		seen[SelectStartingPlayer(players, true)] = true
	}
	assert.Len(t, seen, 3)

	assert.Empty(t, SelectStartingPlayer(nil, true))
}
