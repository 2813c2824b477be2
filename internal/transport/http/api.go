package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

type newGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type moveRequest struct {
	State  string `json:"state"`
	Column int    `json:"column"`
}

type computerMoveRequest struct {
	State string `json:"state"`
}

// gameResponse is the API's view of a position: the opaque token to
// send back on the next call, plus the readable state.
type gameResponse struct {
	State      string         `json:"state"`
	Game       game.State     `json:"game"`
	Difficulty bot.Difficulty `json:"difficulty"`
	Column     *int           `json:"column,omitempty"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "pong"}, http.StatusOK)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if r.Body != nil {
		// An empty body is a valid "default settings" request.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	play := s.initialPlayState(bot.ParseDifficulty(req.Difficulty))
	s.writeGameResponse(w, play, nil)
}

// handleMove applies the human's move. An illegal column or a finished
// game returns the position unchanged with 200, mirroring the engine's
// no-op contract; clients detect the no-op by comparing states.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	play, err := s.codec.Decode(req.State)
	if err != nil {
		writeJSONError(w, "invalid state token", http.StatusBadRequest)
		return
	}

	next := s.engine.ApplyMove(play.Game, req.Column)
	if !next.Equal(play.Game) {
		play.Game = next
		column := req.Column
		play.NewestPieceColumn = &column
		play.NewestComputerColumn = nil
	}
	s.writeGameResponse(w, play, nil)
}

func (s *Server) handleComputerMove(w http.ResponseWriter, r *http.Request) {
	var req computerMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	play, err := s.codec.Decode(req.State)
	if err != nil {
		writeJSONError(w, "invalid state token", http.StatusBadRequest)
		return
	}
	if play.Game.IsOver() {
		writeJSONError(w, "game is over", http.StatusConflict)
		return
	}

	column, next, err := s.computerMove(r.Context(), play)
	if err != nil {
		log.Error().Err(err).Msg("computer move failed")
		writeJSONError(w, "failed to compute move", http.StatusInternalServerError)
		return
	}
	s.writeGameResponse(w, next, &column)
}

func (s *Server) writeGameResponse(w http.ResponseWriter, play PlayState, column *int) {
	token, err := s.codec.Encode(play)
	if err != nil {
		log.Error().Err(err).Msg("state encoding failed")
		writeJSONError(w, "failed to encode state", http.StatusInternalServerError)
		return
	}
	writeJSON(w, gameResponse{
		State:      token,
		Game:       play.Game,
		Difficulty: play.Difficulty,
		Column:     column,
	}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, map[string]string{"error": message}, status)
}
