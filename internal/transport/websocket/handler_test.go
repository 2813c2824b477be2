package websocket

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

func dialTestServer(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	engine := game.New(game.Config{MaxDepth: 3})
	selector := bot.NewSelector(engine, rand.New(rand.NewSource(1)))
	server := httptest.NewServer(NewHandler(engine, selector, nil))

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func readServerMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

func TestSessionStart(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteJSON(ClientMessage{Type: "start", Difficulty: "weak"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	msg := readServerMessage(t, conn)
	if msg.Type != "state" {
		t.Fatalf("expected a state message, got %q", msg.Type)
	}
	if msg.GameID == "" {
		t.Fatalf("expected a game id")
	}
	if msg.Status != string(game.StatusActive) || msg.CurrentPlayer != game.Player1 {
		t.Fatalf("expected a fresh active game, got status=%s player=%d", msg.Status, msg.CurrentPlayer)
	}
}

func TestSessionMoveGetsComputerReply(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteJSON(ClientMessage{Type: "start", Difficulty: "weak"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	started := readServerMessage(t, conn)

	if err := conn.WriteJSON(ClientMessage{Type: "move", Column: 0}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	afterHuman := readServerMessage(t, conn)
	if afterHuman.By != game.Player1 || afterHuman.Column == nil || *afterHuman.Column != 0 {
		t.Fatalf("expected the human move echoed first, got %+v", afterHuman)
	}
	if afterHuman.Board[0][5] != game.Player1 {
		t.Fatalf("expected the human piece at the bottom of column 0")
	}

	afterComputer := readServerMessage(t, conn)
	if afterComputer.By != game.Player2 || afterComputer.Column == nil {
		t.Fatalf("expected a computer reply, got %+v", afterComputer)
	}
	if afterComputer.CurrentPlayer != game.Player1 {
		t.Fatalf("expected the turn back with the human, got %d", afterComputer.CurrentPlayer)
	}
	if afterComputer.GameID != started.GameID {
		t.Fatalf("expected the same game id across the session")
	}

	pieces := 0
	for c := range afterComputer.Board {
		for r := range afterComputer.Board[c] {
			if afterComputer.Board[c][r] != game.Empty {
				pieces++
			}
		}
	}
	if pieces != 2 {
		t.Fatalf("expected two pieces after one exchange, got %d", pieces)
	}
}

func TestSessionInvalidMove(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteJSON(ClientMessage{Type: "start", Difficulty: "weak"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	readServerMessage(t, conn)

	if err := conn.WriteJSON(ClientMessage{Type: "move", Column: 42}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	msg := readServerMessage(t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected an error for an illegal column, got %q", msg.Type)
	}
}

func TestMoveWithoutStart(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteJSON(ClientMessage{Type: "move", Column: 3}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	msg := readServerMessage(t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected an error before start, got %q", msg.Type)
	}
}

func TestUnknownMessageType(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteJSON(ClientMessage{Type: "bogus"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	msg := readServerMessage(t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected an error for an unknown type, got %q", msg.Type)
	}
}
