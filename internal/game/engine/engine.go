// Package engine is the authoritative room state machine. Every action
// follows the same shape: load the record, validate against the current
// phase and role before touching anything, mutate in memory, persist the
// whole record, fire a payload-free notification, and hand back the
// caller's sanitized view.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/fqlipe/football-imposter/internal/apperrors"
	"github.com/fqlipe/football-imposter/internal/catalog"
	"github.com/fqlipe/football-imposter/internal/game/room"
)

// Store is the room registry contract.
type Store interface {
	LoadRoom(ctx context.Context, code string) (*room.Room, error)
	SaveRoom(ctx context.Context, r *room.Room) error
	DeleteRoom(ctx context.Context, code string) error
	RoomExists(ctx context.Context, code string) (bool, error)
}

// CandidateSource supplies secret-player candidates.
type CandidateSource interface {
	Candidates(ctx context.Context, sel catalog.SourceSelection, count int) ([]catalog.PlayerRecord, error)
}

// Event is the broadcast payload: enough to tell subscribers something
// changed, never enough to leak room state. Clients re-fetch and
// re-sanitize on receipt.
type Event struct {
	Event     string     `json:"event"`
	Phase     room.Phase `json:"phase"`
	UpdatedAt int64      `json:"updatedAt"`
}

// Notifier delivers events to room subscribers. Delivery is best-effort
// advisory: implementations must not return errors into the engine.
type Notifier interface {
	Publish(roomCode string, ev Event)
}

// Options tune the engine limits.
type Options struct {
	MinPlayers   int
	MaxPlayers   int
	CodeAttempts int
	Now          func() time.Time
}

// Engine executes room actions.
type Engine struct {
	store        Store
	candidates   CandidateSource
	notifier     Notifier
	now          func() time.Time
	minPlayers   int
	maxPlayers   int
	codeAttempts int
}

// New creates an engine. Zero option fields fall back to game defaults.
func New(store Store, candidates CandidateSource, notifier Notifier, opts Options) *Engine {
	if opts.MinPlayers == 0 {
		opts.MinPlayers = 3
	}
	if opts.MaxPlayers == 0 {
		opts.MaxPlayers = room.MaxPlayers
	}
	if opts.CodeAttempts == 0 {
		opts.CodeAttempts = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		store:        store,
		candidates:   candidates,
		notifier:     notifier,
		now:          opts.Now,
		minPlayers:   opts.MinPlayers,
		maxPlayers:   opts.MaxPlayers,
		codeAttempts: opts.CodeAttempts,
	}
}

// CreateResult is returned from room creation. Room is unsanitized: a
// waiting room holds no secrets yet.
type CreateResult struct {
	Code     string     `json:"code"`
	PlayerID string     `json:"playerId"`
	Room     *room.Room `json:"room"`
}

// CreateRoom makes a new room with the requester as admin. Code
// generation retries on collision up to a fixed bound.
func (e *Engine) CreateRoom(ctx context.Context, adminName string, settings *room.Settings) (*CreateResult, error) {
	adminName = trimName(adminName)
	if adminName == "" {
		return nil, apperrors.ErrMissingName
	}

	code := ""
	for range e.codeAttempts {
		candidate := room.NewCode()
		taken, err := e.store.RoomExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !taken {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, apperrors.ErrCodeExhausted
	}

	s := room.DefaultSettings()
	if settings != nil {
		if err := settings.Validate(); err != nil {
			return nil, err
		}
		s = *settings
	}

	r := room.New(code, adminName, s, e.now())
	if err := e.store.SaveRoom(ctx, r); err != nil {
		return nil, err
	}

	return &CreateResult{
		Code:     code,
		PlayerID: r.Players[0].ID,
		Room:     r,
	}, nil
}

// GetRoom returns the sanitized view for a member.
func (e *Engine) GetRoom(ctx context.Context, code, playerID string) (*room.Room, error) {
	if playerID == "" {
		return nil, apperrors.ErrMissingPlayerID
	}
	r, err := e.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if r.FindPlayer(playerID) == nil {
		return nil, apperrors.ErrNotInRoom
	}
	return room.SanitizeFor(r, playerID), nil
}

// JoinResult carries the new member's id and their view.
type JoinResult struct {
	PlayerID string     `json:"playerId"`
	Room     *room.Room `json:"room"`
}

// Join adds a player to a waiting room.
func (e *Engine) Join(ctx context.Context, code, playerName string) (*JoinResult, error) {
	playerName = trimName(playerName)
	if playerName == "" {
		return nil, apperrors.ErrMissingName
	}

	r, err := e.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	switch r.Phase {
	case room.PhaseWaiting:
	default:
		return nil, apperrors.ErrGameInProgress
	}
	if r.HasName(playerName) {
		return nil, apperrors.ErrNameTaken
	}
	if len(r.Players) >= e.maxPlayers {
		return nil, apperrors.ErrRoomFull
	}

	p := r.AddPlayer(playerName, e.now())
	if err := e.persist(ctx, r, "player-joined"); err != nil {
		return nil, err
	}

	return &JoinResult{PlayerID: p.ID, Room: room.SanitizeFor(r, p.ID)}, nil
}

// Leave removes a player, either by their own request or an admin kick.
// The last player out deletes the room. Returns the actor's view, or
// (nil, true, nil) when the room was deleted.
func (e *Engine) Leave(ctx context.Context, code, playerID, actorID string) (*room.Room, bool, error) {
	if playerID == "" {
		return nil, false, apperrors.ErrMissingPlayerID
	}
	if actorID == "" {
		actorID = playerID
	}

	r, err := e.loadRoom(ctx, code)
	if err != nil {
		return nil, false, err
	}

	if r.FindPlayer(playerID) == nil {
		return nil, false, apperrors.ErrPlayerNotFound
	}

	// Removing someone else is a kick and needs admin privilege.
	if actorID != playerID {
		actor := r.FindPlayer(actorID)
		if actor == nil || !actor.IsAdmin {
			return nil, false, apperrors.ErrNotAdmin
		}
	}

	r.RemovePlayer(playerID)

	if len(r.Players) == 0 {
		if err := e.store.DeleteRoom(ctx, code); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	if err := e.persist(ctx, r, "player-left"); err != nil {
		return nil, false, err
	}
	return room.SanitizeFor(r, actorID), false, nil
}

// ActionRequest is the generic room action input.
type ActionRequest struct {
	Action   string         `json:"action"`
	PlayerID string         `json:"playerId"`
	VotedFor string         `json:"votedFor,omitempty"`
	Settings *room.Settings `json:"settings,omitempty"`
}

// Apply executes a game action and returns the actor's sanitized view.
func (e *Engine) Apply(ctx context.Context, code string, req ActionRequest) (*room.Room, error) {
	if req.PlayerID == "" {
		return nil, apperrors.ErrMissingPlayerID
	}

	r, err := e.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	actor := r.FindPlayer(req.PlayerID)
	if actor == nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	eventKind := "room-updated"
	switch req.Action {
	case "start":
		if err := e.start(ctx, r, actor); err != nil {
			return nil, err
		}
		eventKind = "game-started"
	case "reveal":
		if err := reveal(r, actor); err != nil {
			return nil, err
		}
		eventKind = "player-revealed"
	case "discussion":
		if err := startDiscussion(r, actor, e.now()); err != nil {
			return nil, err
		}
	case "startVoting":
		if err := startVoting(r, actor); err != nil {
			return nil, err
		}
	case "vote":
		if err := vote(r, actor, req.VotedFor); err != nil {
			return nil, err
		}
	case "endVoting", "results":
		if err := endGame(r, actor); err != nil {
			return nil, err
		}
	case "playAgain":
		if err := playAgain(r, actor); err != nil {
			return nil, err
		}
	case "updateSettings":
		if err := updateSettings(r, actor, req.Settings); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrUnknownAction
	}

	if err := e.persist(ctx, r, eventKind); err != nil {
		return nil, err
	}
	return room.SanitizeFor(r, req.PlayerID), nil
}

// start rolls the troll event, draws the secret player(s) and assigns
// roles. Candidate-source failures abort before anything is persisted:
// no game may start without a secret player.
func (e *Engine) start(ctx context.Context, r *room.Room, actor *room.Player) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseWaiting:
	default:
		return apperrors.ErrGameInProgress
	}
	if len(r.Players) < e.minPlayers {
		return apperrors.ErrNotEnoughPlayers
	}

	event := room.RollTrollEvent(&r.Settings)

	secrets, err := e.candidates.Candidates(ctx, r.Settings.Sources, 1)
	if err != nil {
		return err
	}
	if len(secrets) == 0 {
		return apperrors.ErrNoCandidates
	}

	count := room.ClampImposterCount(r.Settings.ImposterCount, len(r.Players), r.Settings.TrollEnabled())
	room.AssignRoles(r.Players, count, event)

	r.SecretPlayer = &secrets[0]
	r.TrollEvent = event

	if event == room.TrollDifferentPlayers {
		extras, err := e.candidates.Candidates(ctx, r.Settings.Sources, len(r.Players))
		if err != nil {
			return err
		}
		i := 0
		for _, p := range r.Players {
			if p.IsImposter {
				continue
			}
			if i < len(extras) {
				record := extras[i]
				p.SecretPlayer = &record
			} else {
				// Fewer candidates than players: share the room secret.
				record := secrets[0]
				p.SecretPlayer = &record
			}
			i++
		}
	}

	r.Phase = room.PhaseRevealing
	return nil
}

func reveal(r *room.Room, actor *room.Player) error {
	switch r.Phase {
	case room.PhaseRevealing:
	default:
		return apperrors.ErrNotRevealing
	}
	// Idempotent: re-revealing has no further effect.
	actor.HasRevealed = true
	return nil
}

func startDiscussion(r *room.Room, actor *room.Player, now time.Time) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseRevealing:
	default:
		return apperrors.ErrNotRevealing
	}
	if !r.AllRevealed() {
		return apperrors.ErrNotAllRevealed
	}

	r.StartingPlayerID = room.SelectStartingPlayer(r.Players, r.Settings.ImposterLessLikelyToStart)
	if r.Settings.DiscussionTime > 0 {
		// Advisory deadline only: clients render the countdown, nothing
		// server-side advances the phase when it elapses.
		r.DiscussionEndTime = now.Add(time.Duration(r.Settings.DiscussionTime) * time.Second).UnixMilli()
	} else {
		r.DiscussionEndTime = 0
	}
	r.Phase = room.PhaseDiscussion
	return nil
}

func startVoting(r *room.Room, actor *room.Player) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseDiscussion:
	default:
		return apperrors.ErrNotVotingPhase
	}
	r.Phase = room.PhaseVoting
	return nil
}

func vote(r *room.Room, actor *room.Player, votedFor string) error {
	switch r.Phase {
	case room.PhaseVoting:
	default:
		return apperrors.ErrNotVotingPhase
	}
	if votedFor == "" {
		return apperrors.ErrMissingVote
	}
	if r.FindPlayer(votedFor) == nil {
		return apperrors.ErrPlayerNotFound
	}
	actor.VotedFor = votedFor
	return nil
}

// endGame covers both endVoting and the admin's skip-to-results: once a
// game is running the admin can move the room to results from any
// phase, regardless of vote completeness.
func endGame(r *room.Room, actor *room.Player) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseRevealing, room.PhaseDiscussion, room.PhaseVoting:
	default:
		return apperrors.ErrNoActiveGame
	}
	r.Phase = room.PhaseResults
	return nil
}

func playAgain(r *room.Room, actor *room.Player) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseResults:
	default:
		return apperrors.ErrNotResultsPhase
	}
	r.ResetGame()
	return nil
}

func updateSettings(r *room.Room, actor *room.Player, settings *room.Settings) error {
	if !actor.IsAdmin {
		return apperrors.ErrNotAdmin
	}
	switch r.Phase {
	case room.PhaseWaiting:
	default:
		return apperrors.ErrSettingsLocked
	}
	if settings == nil {
		return apperrors.ErrMissingSettings
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	r.Settings = *settings
	return nil
}

// RoomExists reports whether a room code is live, without loading it.
func (e *Engine) RoomExists(ctx context.Context, code string) (bool, error) {
	return e.store.RoomExists(ctx, code)
}

// VoteResults tallies the current votes for a member.
func (e *Engine) VoteResults(ctx context.Context, code, playerID string) (*room.VoteResult, error) {
	r, err := e.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if r.FindPlayer(playerID) == nil {
		return nil, apperrors.ErrNotInRoom
	}
	result := room.TallyVotes(r.Players)
	return &result, nil
}

func (e *Engine) loadRoom(ctx context.Context, code string) (*room.Room, error) {
	r, err := e.store.LoadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return r, nil
}

// persist saves the whole record and fires the change notification.
// Notification failures never fail the action; the notifier swallows
// them internally.
func (e *Engine) persist(ctx context.Context, r *room.Room, eventKind string) error {
	r.Touch(e.now())
	if err := e.store.SaveRoom(ctx, r); err != nil {
		return err
	}
	if e.notifier != nil {
		e.notifier.Publish(r.Code, Event{
			Event:     eventKind,
			Phase:     r.Phase,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return nil
}

func trimName(name string) string {
	return strings.TrimSpace(name)
}
