package game

// PlayerID identifies a side. Empty doubles as the vacant-cell value so
// a Board is just a grid of PlayerIDs.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other side. Calling it on Empty returns Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

// GameStatus is the outcome of a position. Exactly one of the three
// holds at any time; Winner is set only when the status is StatusWon,
// so the illegal "not over but has a winner" combination cannot be
// represented.
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

type Error string

func (e Error) Error() string {
	return string(e)
}
