package bot

import (
	"math"
	"sort"

	"github.com/connect4/server/internal/game"
)

// bestMove runs the full search for the side to move and returns the
// column with the highest minimax score. Root candidates are ordered by
// distance from the center column (ties keep natural column order),
// which tightens the alpha-beta windows early; interior nodes keep
// natural order. Ties on score keep the first, center-closest column.
func bestMove(e *game.Engine, state game.State) int {
	player := state.CurrentPlayer
	opponent := player.Opponent()

	ordered := e.LegalColumns(state.Board)
	center := e.Columns / 2
	sort.SliceStable(ordered, func(i, j int) bool {
		di := ordered[i] - center
		if di < 0 {
			di = -di
		}
		dj := ordered[j] - center
		if dj < 0 {
			dj = -dj
		}
		return di < dj
	})

	bestColumn := ordered[0]
	bestScore := math.MinInt32

	for _, col := range ordered {
		next := e.ApplyMove(state, col)
		score := minimax(e, next, e.MaxDepth, math.MinInt32, math.MaxInt32, false, player, opponent)
		if score > bestScore {
			bestScore = score
			bestColumn = col
		}
	}
	return bestColumn
}

// minimax is a depth-limited search with alpha-beta pruning. player and
// opponent are fixed for the whole search: the evaluator always scores
// from player's perspective, and only maximizing alternates.
func minimax(e *game.Engine, state game.State, depth, alpha, beta int, maximizing bool, player, opponent game.PlayerID) int {
	if depth == 0 || state.IsOver() {
		return evaluateBoard(e, state.Board, player, opponent)
	}

	legal := e.LegalColumns(state.Board)

	if maximizing {
		maxEval := math.MinInt32
		for _, col := range legal {
			next := e.ApplyMove(state, col)
			eval := minimax(e, next, depth-1, alpha, beta, false, player, opponent)
			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range legal {
		next := e.ApplyMove(state, col)
		eval := minimax(e, next, depth-1, alpha, beta, true, player, opponent)
		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}
