package room

import "math/rand/v2"

// RollTrollEvent draws a uniform value in [0,100) against the configured
// chance and, on a hit, picks uniformly among the enabled events.
func RollTrollEvent(s *Settings) TrollEvent {
	if !s.TrollEnabled() {
		return TrollNone
	}
	if rand.Float64()*100 >= float64(s.TrollChance) {
		return TrollNone
	}
	return s.EnabledTrollEvents[rand.IntN(len(s.EnabledTrollEvents))]
}

// ClampImposterCount bounds the configured imposter count so at least
// one non-imposter always remains, with headroom for the extra-imposter
// event when troll events are enabled.
func ClampImposterCount(configured, playerCount int, trollEnabled bool) int {
	limit := playerCount - 2
	if trollEnabled {
		limit = playerCount - 3
	}
	if limit < 1 {
		limit = 1
	}
	if configured < 1 {
		return 1
	}
	if configured > limit {
		return limit
	}
	return configured
}

// EffectiveImposterCount applies the troll event to the configured
// count.
func EffectiveImposterCount(configured, playerCount int, event TrollEvent) int {
	switch event {
	case TrollExtraImposter:
		if configured+1 > playerCount-1 {
			return playerCount - 1
		}
		return configured + 1
	case TrollAllImposters:
		return playerCount
	case TrollNoImposters:
		return 0
	default:
		return configured
	}
}

// AssignRoles resets every member's per-game flags and marks the
// effective number of imposters, chosen uniformly without replacement.
func AssignRoles(players []*Player, configured int, event TrollEvent) {
	for _, p := range players {
		p.IsImposter = false
		p.HasRevealed = false
		p.VotedFor = ""
		p.SecretPlayer = nil
	}

	count := EffectiveImposterCount(configured, len(players), event)
	if count <= 0 {
		return
	}

	indices := rand.Perm(len(players))
	if count > len(indices) {
		count = len(indices)
	}
	for _, idx := range indices[:count] {
		players[idx].IsImposter = true
	}
}

// SelectStartingPlayer picks who speaks first in discussion. With the
// handicap enabled, non-imposters get weight 2 and imposters weight 1;
// an all-imposter or imposter-free roster degenerates to uniform.
func SelectStartingPlayer(players []*Player, imposterLessLikely bool) string {
	if len(players) == 0 {
		return ""
	}
	if !imposterLessLikely {
		return players[rand.IntN(len(players))].ID
	}

	total := 0
	weights := make([]int, len(players))
	for i, p := range players {
		w := 2
		if p.IsImposter {
			w = 1
		}
		weights[i] = w
		total += w
	}

	draw := rand.IntN(total)
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return players[i].ID
		}
	}
	return players[0].ID
}
