// Package room holds the game room model and the pure game logic: role
// assignment, vote tallying and per-player sanitization. Everything here
// is side-effect free; persistence and transitions live in the engine.
package room

import (
	"strings"
	"time"

	"github.com/fqlipe/football-imposter/internal/apperrors"
	"github.com/fqlipe/football-imposter/internal/catalog"
)

// MaxPlayers is the room capacity.
const MaxPlayers = 10

// Player is a room member. Timestamps are unix milliseconds.
type Player struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	IsAdmin      bool                  `json:"isAdmin"`
	IsImposter   bool                  `json:"isImposter"`
	HasRevealed  bool                  `json:"hasRevealed"`
	VotedFor     string                `json:"votedFor,omitempty"`
	SecretPlayer *catalog.PlayerRecord `json:"secretPlayer,omitempty"`
	JoinedAt     int64                 `json:"joinedAt"`
}

// Settings are the admin-editable room settings. They persist across
// "play again" cycles.
type Settings struct {
	DiscussionTime            int                     `json:"discussionTime"` // seconds, 0 = untimed
	ImposterCount             int                     `json:"imposterCount"`
	ImposterLessLikelyToStart bool                    `json:"imposterLessLikelyToStart"`
	TrollChance               int                     `json:"trollChance"` // 0-100
	EnabledTrollEvents        []TrollEvent            `json:"enabledTrollEvents"`
	Sources                   catalog.SourceSelection `json:"sourceSelection"`
}

// TrollEnabled reports whether the troll roll can fire at all.
func (s *Settings) TrollEnabled() bool {
	return s.TrollChance > 0 && len(s.EnabledTrollEvents) > 0
}

// Validate rejects settings that could wedge the room: an unknown troll
// event accepted here would later be rolled at game start, persisted as
// the room's TrollEvent, and fail the store's strict decode on every
// subsequent load.
func (s *Settings) Validate() error {
	if s.TrollChance < 0 || s.TrollChance > 100 {
		return apperrors.Validation("Troll chance must be between 0 and 100")
	}
	if s.DiscussionTime < 0 {
		return apperrors.Validation("Discussion time cannot be negative")
	}
	for _, ev := range s.EnabledTrollEvents {
		if ev == TrollNone || !ev.Valid() {
			return apperrors.Validation("Unknown troll event: " + string(ev))
		}
	}
	return nil
}

// DefaultSettings mirrors the client-side defaults.
func DefaultSettings() Settings {
	return Settings{
		DiscussionTime:            180,
		ImposterCount:             1,
		ImposterLessLikelyToStart: false,
		TrollChance:               25,
		EnabledTrollEvents:        AllTrollEvents,
		Sources:                   catalog.DefaultSourceSelection(),
	}
}

// Room is the aggregate root persisted as one record.
type Room struct {
	Code              string                `json:"code"`
	Phase             Phase                 `json:"phase"`
	Players           []*Player             `json:"players"`
	Settings          Settings              `json:"settings"`
	SecretPlayer      *catalog.PlayerRecord `json:"secretPlayer,omitempty"`
	TrollEvent        TrollEvent            `json:"trollEvent,omitempty"`
	StartingPlayerID  string                `json:"startingPlayerId,omitempty"`
	DiscussionEndTime int64                 `json:"discussionEndTime,omitempty"`
	CreatedAt         int64                 `json:"createdAt"`
	UpdatedAt         int64                 `json:"updatedAt"`
}

// New creates a waiting room with the creator as sole player and admin.
func New(code, adminName string, settings Settings, now time.Time) *Room {
	ts := now.UnixMilli()
	return &Room{
		Code:  code,
		Phase: PhaseWaiting,
		Players: []*Player{{
			ID:       NewPlayerID(),
			Name:     adminName,
			IsAdmin:  true,
			JoinedAt: ts,
		}},
		Settings:  settings,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Touch bumps the record's update timestamp.
func (r *Room) Touch(now time.Time) {
	r.UpdatedAt = now.UnixMilli()
}

// FindPlayer returns the member with the given id, or nil.
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Admin returns the current admin, or nil if the room is empty.
func (r *Room) Admin() *Player {
	for _, p := range r.Players {
		if p.IsAdmin {
			return p
		}
	}
	return nil
}

// HasName reports whether a member already uses the name,
// case-insensitively.
func (r *Room) HasName(name string) bool {
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// AllRevealed reports whether every member has seen their role.
func (r *Room) AllRevealed() bool {
	for _, p := range r.Players {
		if !p.HasRevealed {
			return false
		}
	}
	return true
}

// AddPlayer appends a new non-admin member and returns it.
func (r *Room) AddPlayer(name string, now time.Time) *Player {
	p := &Player{
		ID:       NewPlayerID(),
		Name:     name,
		JoinedAt: now.UnixMilli(),
	}
	r.Players = append(r.Players, p)
	return p
}

// RemovePlayer removes the member with the given id. If the admin
// leaves and others remain, the longest-standing survivor (smallest
// joinedAt) is promoted before returning, so a persisted room never
// lacks an admin. Returns the removed player, or nil if unknown.
func (r *Room) RemovePlayer(id string) *Player {
	idx := -1
	for i, p := range r.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if removed.IsAdmin && len(r.Players) > 0 {
		oldest := r.Players[0]
		for _, p := range r.Players[1:] {
			if p.JoinedAt < oldest.JoinedAt {
				oldest = p
			}
		}
		oldest.IsAdmin = true
	}
	return removed
}

// ResetGame clears all per-game state, returning the room to waiting
// with roster and settings intact.
func (r *Room) ResetGame() {
	r.Phase = PhaseWaiting
	r.SecretPlayer = nil
	r.TrollEvent = TrollNone
	r.StartingPlayerID = ""
	r.DiscussionEndTime = 0
	for _, p := range r.Players {
		p.IsImposter = false
		p.HasRevealed = false
		p.VotedFor = ""
		p.SecretPlayer = nil
	}
}

// Validate is the strict shape check applied at the store boundary, so
// malformed records fail loudly instead of leaking into the engine.
func (r *Room) Validate() error {
	if len(r.Code) == 0 {
		return apperrors.ErrBadRoomRecord
	}
	if !r.Phase.Valid() || !r.TrollEvent.Valid() {
		return apperrors.ErrBadRoomRecord
	}
	if len(r.Players) > MaxPlayers {
		return apperrors.ErrBadRoomRecord
	}
	seen := make(map[string]bool, len(r.Players))
	admins := 0
	for _, p := range r.Players {
		if p == nil || p.ID == "" || p.Name == "" {
			return apperrors.ErrBadRoomRecord
		}
		if seen[p.ID] {
			return apperrors.ErrBadRoomRecord
		}
		seen[p.ID] = true
		if p.IsAdmin {
			admins++
		}
	}
	if len(r.Players) > 0 && admins != 1 {
		return apperrors.ErrBadRoomRecord
	}
	return nil
}

// Clone returns a deep copy. The sanitizer mutates copies, never the
// authoritative record.
func (r *Room) Clone() *Room {
	c := *r
	c.Players = make([]*Player, len(r.Players))
	for i, p := range r.Players {
		cp := *p
		if p.SecretPlayer != nil {
			record := *p.SecretPlayer
			cp.SecretPlayer = &record
		}
		c.Players[i] = &cp
	}
	if r.SecretPlayer != nil {
		record := *r.SecretPlayer
		c.SecretPlayer = &record
	}
	c.Settings.EnabledTrollEvents = append([]TrollEvent(nil), r.Settings.EnabledTrollEvents...)
	c.Settings.Sources.Clubs = append([]string(nil), r.Settings.Sources.Clubs...)
	return &c
}
