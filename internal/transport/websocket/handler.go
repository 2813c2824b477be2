// Package websocket is the live binding of the engine: one connection,
// one human-vs-computer game held in connection scope. Nothing survives
// the connection; a dropped client simply starts a new game.
package websocket

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

type Handler struct {
	engine   *game.Engine
	selector *bot.Selector
	upgrader websocket.Upgrader
}

func NewHandler(engine *game.Engine, selector *bot.Selector, allowedOrigins []string) *Handler {
	return &Handler{
		engine:   engine,
		selector: selector,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowedOrigins) == 0 {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// session is one game bound to one connection. The write mutex guards
// against interleaved writes if a caller ever fans out.
type session struct {
	id         string
	state      game.State
	difficulty bot.Difficulty
	conn       *websocket.Conn
	writeMu    sync.Mutex
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var sess *session
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if sess != nil {
				log.Info().Str("game_id", sess.id).Err(err).Msg("websocket closed")
			}
			return
		}

		switch msg.Type {
		case "start":
			sess = &session{
				id:         uuid.NewString(),
				state:      h.engine.InitialState(),
				difficulty: bot.ParseDifficulty(msg.Difficulty),
				conn:       conn,
			}
			log.Info().Str("game_id", sess.id).Str("difficulty", string(sess.difficulty)).Msg("game started")
			h.sendState(sess, nil, game.Empty)

		case "move":
			if sess == nil {
				sendError(conn, "no active game, send start first")
				continue
			}
			h.handleMove(sess, msg.Column)

		default:
			sendError(conn, "unknown message type")
		}
	}
}

func (h *Handler) handleMove(sess *session, column int) {
	next := h.engine.ApplyMove(sess.state, column)
	if next.Equal(sess.state) {
		// The engine's no-op contract: the column was illegal or the
		// game is over. Surface it to the client as an error.
		sendError(sess.conn, "invalid move")
		return
	}
	mover := sess.state.CurrentPlayer
	sess.state = next
	h.sendState(sess, &column, mover)

	if sess.state.IsOver() {
		return
	}

	reply, err := h.selector.SelectMove(sess.state, sess.difficulty)
	if err != nil {
		log.Error().Str("game_id", sess.id).Err(err).Msg("computer move failed")
		sendError(sess.conn, "computer move failed")
		return
	}
	mover = sess.state.CurrentPlayer
	sess.state = h.engine.ApplyMove(sess.state, reply)
	h.sendState(sess, &reply, mover)
}

func (h *Handler) sendState(sess *session, column *int, by game.PlayerID) {
	msg := ServerMessage{
		Type:          "state",
		GameID:        sess.id,
		Board:         sess.state.Board,
		CurrentPlayer: sess.state.CurrentPlayer,
		Status:        string(sess.state.Status),
		Winner:        sess.state.Winner,
		Column:        column,
		By:            by,
	}

	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	if err := sess.conn.WriteJSON(msg); err != nil {
		log.Warn().Str("game_id", sess.id).Err(err).Msg("websocket write failed")
	}
}

func sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(ServerMessage{Type: "error", Message: message}); err != nil {
		log.Warn().Err(err).Msg("websocket write failed")
	}
}
