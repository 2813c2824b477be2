package game

import "strings"

// Board is a column-major grid: Board[col][row], row 0 at the top.
// Pieces drop toward the highest row index (the bottom).
type Board [][]PlayerID

// NewBoard creates an empty columns x rows board.
func NewBoard(columns, rows int) Board {
	board := make(Board, columns)
	for c := range board {
		board[c] = make([]PlayerID, rows)
	}
	return board
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for c := range b {
		clone[c] = make([]PlayerID, len(b[c]))
		copy(clone[c], b[c])
	}
	return clone
}

// Cell returns the owner of the cell, or Empty when the coordinates are
// off the board.
func (b Board) Cell(col, row int) PlayerID {
	if col < 0 || col >= len(b) || row < 0 || row >= len(b[col]) {
		return Empty
	}
	return b[col][row]
}

// ColumnFull reports whether the column's top row is occupied.
func (b Board) ColumnFull(col int) bool {
	return b[col][0] != Empty
}

// IsFull reports whether no column can accept another piece.
func (b Board) IsFull() bool {
	for c := range b {
		if !b.ColumnFull(c) {
			return false
		}
	}
	return true
}

// Key renders the board as a flat string, one character per cell
// ('0', 'R', 'Y'), columns joined by '|'. The result uniquely
// identifies the position and is used as a cache key.
func (b Board) Key() string {
	var sb strings.Builder
	for c := range b {
		if c > 0 {
			sb.WriteByte('|')
		}
		for _, cell := range b[c] {
			switch cell {
			case Player1:
				sb.WriteByte('R')
			case Player2:
				sb.WriteByte('Y')
			default:
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
