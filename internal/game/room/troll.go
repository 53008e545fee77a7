package room

// TrollEvent is a randomized rule twist rolled at game start. The empty
// string means no event fired.
type TrollEvent string

const (
	TrollNone             TrollEvent = ""
	TrollExtraImposter    TrollEvent = "extraImposter"
	TrollAllImposters     TrollEvent = "allImposters"
	TrollNoImposters      TrollEvent = "noImposters"
	TrollDifferentPlayers TrollEvent = "differentPlayers"
)

// AllTrollEvents lists every event that can be enabled in settings.
var AllTrollEvents = []TrollEvent{
	TrollExtraImposter,
	TrollAllImposters,
	TrollNoImposters,
	TrollDifferentPlayers,
}

// Valid reports whether e is a known event or none.
func (e TrollEvent) Valid() bool {
	switch e {
	case TrollNone, TrollExtraImposter, TrollAllImposters, TrollNoImposters, TrollDifferentPlayers:
		return true
	}
	return false
}
