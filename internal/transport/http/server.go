// Package http serves the game two ways: an HTML page that keeps the
// whole game inside signed URL tokens, and a JSON API over the same
// operations. Both are stateless; the client carries the position.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/cache"
	"github.com/connect4/server/internal/game"
	"github.com/connect4/server/internal/transport/http/middleware"
)

type Server struct {
	engine   *game.Engine
	selector *bot.Selector
	moves    cache.MoveCache
	codec    *StateCodec
	origins  []string
}

func NewServer(engine *game.Engine, selector *bot.Selector, moves cache.MoveCache, stateSecret string, origins []string) *Server {
	return &Server{
		engine:   engine,
		selector: selector,
		moves:    moves,
		codec:    NewStateCodec(stateSecret),
		origins:  origins,
	}
}

// Router builds the chi router. A non-nil ws handler is mounted at /ws.
func (s *Server) Router(ws http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(s.origins))

	r.Get("/", s.handlePage)

	r.Get("/api/ping", s.handlePing)
	r.Post("/api/game", s.handleNewGame)
	r.Post("/api/game/move", s.handleMove)
	r.Post("/api/game/bot", s.handleComputerMove)

	if ws != nil {
		r.Handle("/ws", ws)
	}
	return r
}

func (s *Server) initialPlayState(difficulty bot.Difficulty) PlayState {
	return PlayState{
		Game:       s.engine.InitialState(),
		Difficulty: difficulty,
	}
}

// computerMove picks and applies the computer's move for the play
// state's difficulty. Strong-tier results are memoized: the search is
// deterministic, so a cached column is always still the answer.
func (s *Server) computerMove(ctx context.Context, play PlayState) (int, PlayState, error) {
	var key string
	if play.Difficulty == bot.DifficultyStrong {
		key = cache.MoveKey(s.engine, play.Game)
		if column, ok := s.moves.Get(ctx, key); ok {
			next := s.engine.ApplyMove(play.Game, column)
			if !next.Equal(play.Game) {
				play.Game = next
				play.NewestComputerColumn = &column
				return column, play, nil
			}
			// A stale or corrupt entry would no-op; recompute.
		}
	}

	column, err := s.selector.SelectMove(play.Game, play.Difficulty)
	if err != nil {
		return 0, play, err
	}
	if key != "" {
		s.moves.Set(ctx, key, column)
	}

	play.Game = s.engine.ApplyMove(play.Game, column)
	play.NewestComputerColumn = &column
	return column, play, nil
}
