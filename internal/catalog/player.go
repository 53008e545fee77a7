package catalog

// PlayerRecord is a secret-footballer candidate.
type PlayerRecord struct {
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Nationality string  `json:"nationality"`
	Position    string  `json:"position"`
	Photo       *string `json:"photo,omitempty"`
	Hint        string  `json:"hint,omitempty"`
}

// SourceSelection picks which candidate pools feed a game. Clubs holds
// TheSportsDB team ids.
type SourceSelection struct {
	CurrentStars bool     `json:"currentStars"`
	Legends      bool     `json:"legends"`
	Clubs        []string `json:"clubs"`
}

// DefaultSourceSelection enables both curated lists and no live clubs.
func DefaultSourceSelection() SourceSelection {
	return SourceSelection{
		CurrentStars: true,
		Legends:      true,
		Clubs:        []string{},
	}
}

// ClubInfo describes a selectable club roster source.
type ClubInfo struct {
	ID        string `json:"id"` // TheSportsDB team id
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Badge     string `json:"badge"`
}
