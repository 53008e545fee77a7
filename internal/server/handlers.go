package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fqlipe/football-imposter/internal/apperrors"
	"github.com/fqlipe/football-imposter/internal/game/engine"
	"github.com/fqlipe/football-imposter/internal/game/room"
)

type createRoomRequest struct {
	Name     string         `json:"name"`
	Settings *room.Settings `json:"settings,omitempty"`
}

type joinRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("Invalid request body"))
		return
	}

	result, err := s.engine.CreateRoom(r.Context(), req.Name, req.Settings)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("🏠 room %s created by %s", result.Code, req.Name)
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := roomCode(ps)
	view, err := s.engine.GetRoom(r.Context(), code, r.URL.Query().Get("playerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("Invalid request body"))
		return
	}

	result, err := s.engine.Join(r.Context(), roomCode(ps), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req engine.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("Invalid request body"))
		return
	}

	view, err := s.engine.Apply(r.Context(), roomCode(ps), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleLeave is the beacon-friendly leave: the departing client fires
// it on page unload and usually never reads the response.
func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	playerID := r.URL.Query().Get("playerId")
	_, deleted, err := s.engine.Leave(r.Context(), roomCode(ps), playerID, playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if deleted {
		log.Printf("🗑️ room %s deleted, last player left", roomCode(ps))
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRemovePlayer serves both self-leave and admin kicks.
func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	playerID := ps.ByName("playerId")
	actorID := r.URL.Query().Get("actorId")

	view, deleted, err := s.engine.Leave(r.Context(), roomCode(ps), playerID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if deleted {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleVotes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := s.engine.VoteResults(r.Context(), roomCode(ps), r.URL.Query().Get("playerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleQR renders the join link as a PNG for pass-around joining.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := roomCode(ps)
	exists, err := s.engine.RoomExists(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	if !exists {
		writeError(w, apperrors.ErrRoomNotFound)
		return
	}

	joinURL := strings.TrimSuffix(s.cfg.Server.PublicURL, "/") + "/join/" + code
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.hub.Subscribe(w, r, roomCode(ps))
}

func roomCode(ps httprouter.Params) string {
	return strings.ToUpper(ps.ByName("code"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var ge *apperrors.GameError
	if errors.As(err, &ge) {
		status = ge.HTTPStatus()
	} else {
		log.Printf("❌ internal error: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
