package bot

import (
	"testing"

	"github.com/connect4/server/internal/game"
)

func TestEvaluateEmptyBoard(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)

	if score := evaluateBoard(e, board, game.Player1, game.Player2); score != 0 {
		t.Fatalf("expected 0 for empty board, got %d", score)
	}
}

func TestEvaluateCenterBonus(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)
	board[3][5] = game.Player1

	// A lone piece scores nothing from any window, only the center
	// bonus.
	if score := evaluateBoard(e, board, game.Player1, game.Player2); score != 6 {
		t.Fatalf("expected center bonus of 6 for lone center piece, got %d", score)
	}
}

func TestEvaluateOffCenterLonePiece(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)
	board[0][5] = game.Player1

	if score := evaluateBoard(e, board, game.Player1, game.Player2); score != 0 {
		t.Fatalf("expected 0 for lone corner piece, got %d", score)
	}
}

// Three on the bottom row at columns 0..2 see exactly two scoring
// horizontal windows: [0..3] with three pieces and one gap (+100) and
// [1..4] with two pieces and two gaps (+10).
func TestEvaluateOpenThree(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)
	board[0][5] = game.Player1
	board[1][5] = game.Player1
	board[2][5] = game.Player1

	if score := evaluateBoard(e, board, game.Player1, game.Player2); score != 110 {
		t.Fatalf("expected 110 for open three, got %d", score)
	}
}

// The same position scored for the other side shows the defensive
// bias: the opponent's one-short window costs -1000, ten times the
// +100 it would earn as one's own.
func TestEvaluateDefensiveBias(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)
	board[0][5] = game.Player1
	board[1][5] = game.Player1
	board[2][5] = game.Player1

	if score := evaluateBoard(e, board, game.Player2, game.Player1); score != -1010 {
		t.Fatalf("expected -1010 when the three belongs to the opponent, got %d", score)
	}
}

func TestEvaluateCompletedRun(t *testing.T) {
	e := game.Default()
	board := game.NewBoard(e.Columns, e.Rows)
	for c := 0; c < 4; c++ {
		board[c][5] = game.Player1
	}

	score := evaluateBoard(e, board, game.Player1, game.Player2)
	if score < scoreWin {
		t.Fatalf("expected at least %d for a completed run, got %d", scoreWin, score)
	}

	score = evaluateBoard(e, board, game.Player2, game.Player1)
	if score > penaltyLoss {
		t.Fatalf("expected at most %d for an opponent's completed run, got %d", penaltyLoss, score)
	}
}

func TestScoreWindow(t *testing.T) {
	cases := []struct {
		name                    string
		player, opponent, empty int
		want                    int
	}{
		{"full run", 4, 0, 0, scoreWin},
		{"one short", 3, 0, 1, scoreOpenThree},
		{"two short", 2, 0, 2, scoreOpenTwo},
		{"mixed window", 2, 1, 1, 0},
		{"opponent full run", 0, 4, 0, penaltyLoss},
		{"opponent one short", 0, 3, 1, penaltyOpenThree},
		{"opponent two short", 0, 2, 2, penaltyOpenTwo},
		{"all empty", 0, 0, 4, 0},
	}
	for _, tc := range cases {
		if got := scoreWindow(4, tc.player, tc.opponent, tc.empty); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
