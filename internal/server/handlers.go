package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/output"
)

// CreateGameRequest is the body of POST /api/games.
type CreateGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

// GameResponse carries a game's ID and state.
type GameResponse struct {
	ID    string            `json:"id"`
	State *output.GameState `json:"state"`
}

// MoveRequest is the body of POST /api/games/{id}/move. Either Move holds
// the whole move in text form, or From and To name the squares.
type MoveRequest struct {
	Move      string `json:"move,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveResponse reports an accepted move.
type MoveResponse struct {
	Kind  string            `json:"kind"`
	State *output.GameState `json:"state"`
}

// PromoteRequest is the body of POST /api/games/{id}/promote.
type PromoteRequest struct {
	Piece string `json:"piece"`
}

// ErrorResponse reports a failed request. State is included when the
// request reached a game, so clients can resynchronize.
type ErrorResponse struct {
	Error string            `json:"error"`
	State *output.GameState `json:"state,omitempty"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	session, err := s.store.Create(req.FEN)
	if err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	var state *output.GameState
	session.With(func(g *engine.Game) {
		state = output.NewGameState(g)
	})
	s.commentary("game created: id=%s fen=%q", session.ID, state.FEN)

	respondWithJSON(w, http.StatusCreated, GameResponse{ID: session.ID, State: state})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var state *output.GameState
	session.With(func(g *engine.Game) {
		state = output.NewGameState(g)
	})

	etag := stateETag(state)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	respondWithJSON(w, http.StatusOK, GameResponse{ID: session.ID, State: state})
}

// stateETag identifies a state by position hash and ply. A promotion
// changes the hash without advancing the ply.
func stateETag(state *output.GameState) string {
	return fmt.Sprintf(`"%s-%d"`, state.Hash, state.Ply)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, err := parseMoveRequest(req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		kind  engine.MoveKind
		state *output.GameState
	)
	session.With(func(g *engine.Game) {
		kind, err = g.MoveWithPromotion(in.From, in.To, in.Promotion)
		state = output.NewGameState(g)
		if err == nil {
			s.broadcastState(session.ID, state)
		}
	})

	if err != nil {
		s.commentary("move rejected: id=%s move=%s: %v", session.ID, in, err)
		respondWithJSON(w, statusFor(err), ErrorResponse{Error: err.Error(), State: state})
		return
	}

	s.commentary("move played: id=%s move=%s kind=%s", session.ID, in, kind)
	respondWithJSON(w, http.StatusOK, MoveResponse{Kind: kind.String(), State: state})
}

func (s *Server) handlePromote(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req PromoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	choice, err := notation.ParsePromotion(req.Piece)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var state *output.GameState
	session.With(func(g *engine.Game) {
		err = g.Promote(choice)
		state = output.NewGameState(g)
		if err == nil {
			s.broadcastState(session.ID, state)
		}
	})

	if err != nil {
		respondWithJSON(w, statusFor(err), ErrorResponse{Error: err.Error(), State: state})
		return
	}

	s.commentary("promoted: id=%s piece=%s", session.ID, choice)
	respondWithJSON(w, http.StatusOK, GameResponse{ID: session.ID, State: state})
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	s.store.Delete(session.ID)
	s.hub.Close(session.ID)
	s.commentary("game deleted: id=%s", session.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var initial []byte
	var err error
	session.With(func(g *engine.Game) {
		initial, err = json.Marshal(output.NewGameState(g))
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to encode state")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	s.hub.attach(conn, session.ID, initial)
}

// session looks up the game named in the route, responding 404 if it does
// not exist.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := mux.Vars(r)["id"]
	session, err := s.store.Get(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Game not found")
		return nil, false
	}
	return session, true
}

func (s *Server) broadcastState(gameID string, state *output.GameState) {
	message, err := json.Marshal(state)
	if err != nil {
		s.logger.Printf("failed to encode state for game %s: %v", gameID, err)
		return
	}
	s.hub.Broadcast(gameID, message)
}

// parseMoveRequest turns either form of a move request into a parsed move.
func parseMoveRequest(req MoveRequest) (notation.Input, error) {
	text := req.Move
	if text == "" {
		text = req.From + req.To
	}

	in, err := notation.ParseMove(text)
	if err != nil {
		return notation.Input{}, err
	}

	if req.Promotion != "" {
		choice, err := notation.ParsePromotion(req.Promotion)
		if err != nil {
			return notation.Input{}, err
		}
		if in.Promotion != chess.NoPiece && in.Promotion != choice {
			return notation.Input{}, chesserrors.Wrapf(chesserrors.ErrParseFailure,
				"promotion given twice (%s and %s)", in.Promotion, choice)
		}
		in.Promotion = choice
	}
	return in, nil
}

// statusFor maps an error to the HTTP status reported for it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, chesserrors.ErrPromotionPending),
		errors.Is(err, chesserrors.ErrNoPromotionPending):
		return http.StatusConflict
	case chesserrors.IsRejection(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chesserrors.ErrInvalidFEN),
		errors.Is(err, chesserrors.ErrInvalidSquare),
		errors.Is(err, chesserrors.ErrInvalidPromotion),
		errors.Is(err, chesserrors.ErrParseFailure):
		return http.StatusBadRequest
	case errors.Is(err, chesserrors.ErrTooManyGames):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: message})
}
