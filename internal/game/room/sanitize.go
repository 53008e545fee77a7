package room

// SanitizeFor produces the view of the room the requesting player is
// allowed to see. It is a pure function of (room, requester) applied
// fresh on every read; redacted copies are never persisted.
//
// waiting and results are fully visible. In every other phase:
//   - other players' isImposter is forced false and their per-player
//     secret is cleared; their vote is hidden while voting is ongoing
//   - the requester's own record passes through unmodified
//   - the room secret is cleared for imposters
//   - the troll event is always hidden until results
//
// An unknown requester (spectator) sees the other-player redaction for
// everyone plus no room secret and no troll event.
func SanitizeFor(r *Room, playerID string) *Room {
	if !r.Phase.HasSecrets() {
		return r.Clone()
	}

	requester := r.FindPlayer(playerID)
	if requester == nil {
		return sanitizeForSpectator(r)
	}

	view := r.Clone()
	for _, p := range view.Players {
		if p.ID == playerID {
			continue
		}
		p.IsImposter = false
		p.SecretPlayer = nil
		if view.Phase == PhaseVoting {
			p.VotedFor = ""
		}
	}

	if requester.IsImposter {
		view.SecretPlayer = nil
	}
	view.TrollEvent = TrollNone

	return view
}

func sanitizeForSpectator(r *Room) *Room {
	view := r.Clone()
	for _, p := range view.Players {
		p.IsImposter = false
		p.SecretPlayer = nil
		p.VotedFor = ""
	}
	view.SecretPlayer = nil
	view.TrollEvent = TrollNone
	return view
}
