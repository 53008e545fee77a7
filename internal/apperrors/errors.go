package apperrors

import "net/http"

// Kind classifies a game error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindUpstream
)

// GameError is the error type surfaced by every room action. The message
// is user-facing: clients render it directly.
type GameError struct {
	Kind    Kind
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a response status code.
func (e *GameError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a one-off validation error for malformed input.
func Validation(msg string) *GameError {
	return &GameError{Kind: KindValidation, Message: msg}
}

// Predefined errors, one per reject reason.
var (
	ErrRoomNotFound     = &GameError{Kind: KindNotFound, Message: "Room not found"}
	ErrPlayerNotFound   = &GameError{Kind: KindNotFound, Message: "Player not found in room"}
	ErrNotInRoom        = &GameError{Kind: KindForbidden, Message: "Player not in room"}
	ErrRoomFull         = &GameError{Kind: KindConflict, Message: "Room is full"}
	ErrNameTaken        = &GameError{Kind: KindConflict, Message: "Name already taken"}
	ErrGameInProgress   = &GameError{Kind: KindForbidden, Message: "Game has already started"}
	ErrNotAdmin         = &GameError{Kind: KindForbidden, Message: "Only the admin can do that"}
	ErrNotEnoughPlayers = &GameError{Kind: KindForbidden, Message: "Need at least 3 players to start"}
	ErrNotAllRevealed   = &GameError{Kind: KindForbidden, Message: "Not all players have revealed their roles"}
	ErrNotRevealing     = &GameError{Kind: KindForbidden, Message: "Roles are not being revealed right now"}
	ErrNotVotingPhase   = &GameError{Kind: KindForbidden, Message: "Not in voting phase"}
	ErrNotResultsPhase  = &GameError{Kind: KindForbidden, Message: "Game is not over yet"}
	ErrNoActiveGame     = &GameError{Kind: KindForbidden, Message: "No game is in progress"}
	ErrSettingsLocked   = &GameError{Kind: KindForbidden, Message: "Settings can only change before the game starts"}
	ErrUnknownAction    = &GameError{Kind: KindValidation, Message: "Unknown action"}
	ErrMissingPlayerID  = &GameError{Kind: KindValidation, Message: "Player ID is required"}
	ErrMissingName      = &GameError{Kind: KindValidation, Message: "Player name is required"}
	ErrMissingVote      = &GameError{Kind: KindValidation, Message: "Must specify who to vote for"}
	ErrMissingSettings  = &GameError{Kind: KindValidation, Message: "Settings are required"}
	ErrBadRoomRecord    = &GameError{Kind: KindValidation, Message: "Stored room record is malformed"}
	ErrCodeExhausted    = &GameError{Kind: KindConflict, Message: "Could not generate a unique room code"}
	ErrNoCandidates     = &GameError{Kind: KindUpstream, Message: "No secret player candidates available"}
)
