package game

// Config fixes the board geometry and the search depth for an Engine.
// Zero values fall back to the classic 7x6, connect-4, depth-5 setup.
type Config struct {
	Columns   int
	Rows      int
	WinLength int
	MaxDepth  int
}

const (
	DefaultColumns   = 7
	DefaultRows      = 6
	DefaultWinLength = 4
	DefaultMaxDepth  = 5
)

// Engine holds the immutable rule parameters. It carries no game state;
// every operation takes the State it works on.
type Engine struct {
	Columns   int
	Rows      int
	WinLength int
	MaxDepth  int
}

func New(cfg Config) *Engine {
	if cfg.Columns <= 0 {
		cfg.Columns = DefaultColumns
	}
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.WinLength <= 0 {
		cfg.WinLength = DefaultWinLength
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Engine{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		WinLength: cfg.WinLength,
		MaxDepth:  cfg.MaxDepth,
	}
}

// Default returns an engine with the classic settings.
func Default() *Engine {
	return New(Config{})
}

// InitialState returns an empty board with Player1 to move.
func (e *Engine) InitialState() State {
	return State{
		Board:         NewBoard(e.Columns, e.Rows),
		CurrentPlayer: Player1,
		Winner:        Empty,
		Status:        StatusActive,
	}
}

// LegalColumns lists every playable column in ascending order. The
// result is empty when the board is full.
func (e *Engine) LegalColumns(board Board) []int {
	columns := []int{}
	for c := 0; c < e.Columns; c++ {
		if !board.ColumnFull(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// ApplyMove drops the current player's piece into the column and
// returns the resulting state. Out-of-range columns, full columns, and
// finished games all return the input state unchanged; callers that
// probe moves speculatively rely on this no-op contract, so it is not
// an error. The turn only passes to the other player when the move
// leaves the game live: the side that ends the game stays recorded as
// the mover in the final state.
func (e *Engine) ApplyMove(state State, column int) State {
	if column < 0 || column >= e.Columns || state.IsOver() {
		return state
	}

	row := -1
	for r := e.Rows - 1; r >= 0; r-- {
		if state.Board[column][r] == Empty {
			row = r
			break
		}
	}
	if row < 0 {
		return state
	}

	board := state.Board.Clone()
	board[column][row] = state.CurrentPlayer

	next := State{
		Board:         board,
		CurrentPlayer: state.CurrentPlayer,
		Winner:        Empty,
		Status:        StatusActive,
	}

	switch {
	case e.CheckWin(board, state.CurrentPlayer):
		next.Winner = state.CurrentPlayer
		next.Status = StatusWon
	case board.IsFull():
		next.Status = StatusDraw
	default:
		next.CurrentPlayer = state.CurrentPlayer.Opponent()
	}
	return next
}

// CheckWin reports whether the player owns a straight run of WinLength
// pieces anywhere on the board. From every cell of the player it probes
// the four forward directions; runs are re-found from several of their
// cells, which is redundant but harmless.
func (e *Engine) CheckWin(board Board, player PlayerID) bool {
	directions := [4][2]int{
		{1, 0},  // horizontal
		{0, 1},  // vertical
		{1, 1},  // diagonal down-right
		{1, -1}, // diagonal up-right
	}

	for c := 0; c < e.Columns; c++ {
		for r := 0; r < e.Rows; r++ {
			if board[c][r] != player {
				continue
			}
			for _, dir := range directions {
				count := 1
				cc, rr := c+dir[0], r+dir[1]
				for cc >= 0 && cc < e.Columns && rr >= 0 && rr < e.Rows && board[cc][rr] == player {
					count++
					if count == e.WinLength {
						return true
					}
					cc += dir[0]
					rr += dir[1]
				}
			}
		}
	}
	return false
}
