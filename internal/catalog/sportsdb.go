package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// sportsDBPlayer mirrors the TheSportsDB player payload fields we use.
type sportsDBPlayer struct {
	ID          string  `json:"idPlayer"`
	Name        string  `json:"strPlayer"`
	Thumb       *string `json:"strThumb"`
	Cutout      *string `json:"strCutout"`
	Nationality string  `json:"strNationality"`
	Position    string  `json:"strPosition"`
	Team        string  `json:"strTeam"`
	Sport       string  `json:"strSport"`
}

type sportsDBPlayerList struct {
	Players []sportsDBPlayer `json:"player"`
}

// rosterCache holds fetched club rosters with a staleness check. The
// clock is injected so tests can control expiry.
type rosterCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	fetchedAt time.Time
	rosters   map[string][]PlayerRecord // team id -> roster
}

func newRosterCache(ttl time.Duration, now func() time.Time) *rosterCache {
	return &rosterCache{
		ttl:     ttl,
		now:     now,
		rosters: make(map[string][]PlayerRecord),
	}
}

func (c *rosterCache) get(teamID string) ([]PlayerRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchedAt.IsZero() || c.now().Sub(c.fetchedAt) > c.ttl {
		return nil, false
	}
	roster, ok := c.rosters[teamID]
	return roster, ok
}

func (c *rosterCache) put(teamID string, roster []PlayerRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchedAt.IsZero() || c.now().Sub(c.fetchedAt) > c.ttl {
		// New cache generation: drop stale rosters.
		c.rosters = make(map[string][]PlayerRecord)
	}
	c.rosters[teamID] = roster
	c.fetchedAt = c.now()
}

// SportsDBClient fetches club rosters from TheSportsDB.
type SportsDBClient struct {
	baseURL string
	http    *http.Client
	cache   *rosterCache
}

// NewSportsDBClient builds a roster client with its own cache.
func NewSportsDBClient(baseURL string, timeout, cacheTTL time.Duration, now func() time.Time) *SportsDBClient {
	if now == nil {
		now = time.Now
	}
	return &SportsDBClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   newRosterCache(cacheTTL, now),
	}
}

// TeamRoster returns the squad of a club, keeping only footballers with
// photos and deduplicating by external id.
func (c *SportsDBClient) TeamRoster(ctx context.Context, teamID string) ([]PlayerRecord, error) {
	if roster, ok := c.cache.get(teamID); ok {
		return roster, nil
	}

	endpoint := fmt.Sprintf("%s/lookup_all_players.php?id=%s", c.baseURL, url.QueryEscape(teamID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster for team %s: %w", teamID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster for team %s: status %d", teamID, resp.StatusCode)
	}

	var list sportsDBPlayerList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode roster for team %s: %w", teamID, err)
	}

	seen := make(map[string]bool)
	roster := make([]PlayerRecord, 0, len(list.Players))
	for _, p := range list.Players {
		if p.Sport != "" && p.Sport != "Soccer" {
			continue
		}
		photo := p.Cutout
		if photo == nil || *photo == "" {
			photo = p.Thumb
		}
		// Players without photos make for a poor reveal screen.
		if photo == nil || *photo == "" {
			continue
		}
		if p.ID == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		roster = append(roster, PlayerRecord{
			Name:        p.Name,
			Team:        orUnknown(p.Team),
			Nationality: orUnknown(p.Nationality),
			Position:    orUnknown(p.Position),
			Photo:       photo,
		})
	}

	c.cache.put(teamID, roster)
	log.Printf("⚽ cached %d players for team %s", len(roster), teamID)
	return roster, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
