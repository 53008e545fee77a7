package room

// VoteResult is the tally of a voting round.
type VoteResult struct {
	// EliminatedID is the player with the strict maximum of votes, or
	// empty when the top count is tied. A tie eliminates nobody; the
	// random tiebreak of the pass-the-phone variant is deliberately not
	// used here.
	EliminatedID string         `json:"eliminatedId,omitempty"`
	Votes        map[string]int `json:"votes"`
}

// TallyVotes counts votedFor per candidate and resolves elimination.
func TallyVotes(players []*Player) VoteResult {
	votes := make(map[string]int)
	for _, p := range players {
		if p.VotedFor != "" {
			votes[p.VotedFor]++
		}
	}

	max := 0
	eliminated := ""
	tied := false
	for candidate, count := range votes {
		switch {
		case count > max:
			max = count
			eliminated = candidate
			tied = false
		case count == max:
			tied = true
		}
	}
	if tied {
		eliminated = ""
	}

	return VoteResult{EliminatedID: eliminated, Votes: votes}
}
