package room

// Phase is the room-wide game phase. It is a closed set: every action in
// the engine switches on it exhaustively.
type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseRevealing  Phase = "revealing"
	PhaseDiscussion Phase = "discussion"
	PhaseVoting     Phase = "voting"
	PhaseResults    Phase = "results"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseWaiting, PhaseRevealing, PhaseDiscussion, PhaseVoting, PhaseResults:
		return true
	}
	return false
}

// HasSecrets reports whether the phase carries information that must be
// redacted per player. Pre-game has no secrets yet; post-game secrets
// are meant to be revealed.
func (p Phase) HasSecrets() bool {
	switch p {
	case PhaseWaiting, PhaseResults:
		return false
	case PhaseRevealing, PhaseDiscussion, PhaseVoting:
		return true
	}
	return false
}
