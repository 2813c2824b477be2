package websocket

import "github.com/connect4/server/internal/game"

// ClientMessage is what the browser sends: "start" opens a game at a
// difficulty, "move" plays a column.
type ClientMessage struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	Column     int    `json:"column,omitempty"`
}

// ServerMessage carries the position after every ply. By names the side
// whose move produced this state.
type ServerMessage struct {
	Type          string        `json:"type"`
	GameID        string        `json:"gameId,omitempty"`
	Board         game.Board    `json:"board,omitempty"`
	CurrentPlayer game.PlayerID `json:"currentPlayer,omitempty"`
	Status        string        `json:"status,omitempty"`
	Winner        game.PlayerID `json:"winner,omitempty"`
	Column        *int          `json:"column,omitempty"`
	By            game.PlayerID `json:"by,omitempty"`
	Message       string        `json:"message,omitempty"`
}
