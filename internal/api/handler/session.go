package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/frogfen/internal/api/request"
	"github.com/mcoot/frogfen/internal/api/response"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/services/game"
)

// SessionHandler handles session and move endpoints
type SessionHandler struct {
	controller game.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller game.ControllerInterface) *SessionHandler {
	return &SessionHandler{controller: controller}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.CreateSession(r.Context(), req.Seed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/sessions/"+url.PathEscape(string(session.ID)), response.SessionFromModel(session))
}

// List handles GET /api/v1/sessions?seed=
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.controller.ListSessions(r.Context(), r.URL.Query().Get("seed"))
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SessionList{Sessions: make([]response.SessionSummary, len(sessions))}
	for i, s := range sessions {
		resp.Sessions[i] = response.SessionSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.GetSession(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteSession(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Place handles POST /api/v1/sessions/{id}/placements
func (h *SessionHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceTileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	session, err := h.controller.PlaceTile(r.Context(), sessionID(r), model.TileID(req.TileID), pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Unplace handles DELETE /api/v1/sessions/{id}/placements.
// A body with a position undoes that one placement; no body resets them all.
func (h *SessionHandler) Unplace(w http.ResponseWriter, r *http.Request) {
	var req request.UnplaceTileRequest
	err := json.NewDecoder(r.Body).Decode(&req)

	var session *model.Session
	switch {
	case errors.Is(err, io.EOF):
		session, err = h.controller.ResetPlacements(r.Context(), sessionID(r))
	case err != nil:
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	default:
		pos := model.Position{Row: req.Row, Col: req.Col}
		session, err = h.controller.UnplaceTile(r.Context(), sessionID(r), pos)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Submit handles POST /api/v1/sessions/{id}/submit.
// Rule rejections are game outcomes and are reported in the body with a 200.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	result, err := h.controller.SubmitMove(r.Context(), id)
	if err == nil {
		response.JSON(w, http.StatusOK, response.AcceptedFromModel(result))
		return
	}

	rej, ok := model.AsRejection(err)
	if !ok {
		WriteError(w, err)
		return
	}

	session, err := h.controller.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RejectedFromModel(rej, session.Turn))
}
