// Package catalog supplies secret-footballer candidates from curated
// lists and live club rosters.
package catalog

import (
	"context"
	"log"
	"math/rand/v2"

	"github.com/fqlipe/football-imposter/internal/apperrors"
)

// RosterSource fetches a club squad by TheSportsDB team id.
type RosterSource interface {
	TeamRoster(ctx context.Context, teamID string) ([]PlayerRecord, error)
}

// Catalog resolves a SourceSelection into candidate players.
type Catalog struct {
	rosters RosterSource
}

// New builds a catalog. rosters may be nil, in which case club
// selections degrade to the curated pool.
func New(rosters RosterSource) *Catalog {
	return &Catalog{rosters: rosters}
}

// Candidates returns up to count players drawn from the selected
// sources, shuffled. A club fetch failure degrades to the remaining
// pool; an empty pool is an upstream error because no game can start
// without a secret player.
func (c *Catalog) Candidates(ctx context.Context, sel SourceSelection, count int) ([]PlayerRecord, error) {
	if count <= 0 {
		return nil, apperrors.Validation("candidate count must be positive")
	}

	var pool []PlayerRecord
	if sel.CurrentStars {
		pool = append(pool, CurrentStars...)
	}
	if sel.Legends {
		pool = append(pool, Legends...)
	}

	for _, teamID := range sel.Clubs {
		if c.rosters == nil {
			break
		}
		roster, err := c.rosters.TeamRoster(ctx, teamID)
		if err != nil {
			// Degrade to whatever else is selected.
			log.Printf("⚠️ roster fetch failed for team %s: %v", teamID, err)
			continue
		}
		pool = append(pool, roster...)
	}

	// Nothing selected at all: fall back to the full curated pool.
	if !sel.CurrentStars && !sel.Legends && len(sel.Clubs) == 0 {
		pool = AllCurated()
	}

	if len(pool) == 0 {
		return nil, apperrors.ErrNoCandidates
	}

	shuffled := make([]PlayerRecord, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}
