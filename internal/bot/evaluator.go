package bot

import "github.com/connect4/server/internal/game"

const (
	scoreWin         = 100000
	scoreOpenThree   = 100
	scoreOpenTwo     = 10
	scoreCenter      = 6
	penaltyLoss      = -100000
	penaltyOpenThree = -1000
	penaltyOpenTwo   = -10
)

// evaluateBoard scores a position from the fixed root player's
// perspective. It is only ever called on search leaves.
func evaluateBoard(e *game.Engine, board game.Board, player, opponent game.PlayerID) int {
	score := 0

	// Center control
	centerCol := e.Columns / 2
	for r := 0; r < e.Rows; r++ {
		if board[centerCol][r] == player {
			score += scoreCenter
		}
	}

	score += scoreDirection(e, board, player, opponent, 1, 0)  // horizontal
	score += scoreDirection(e, board, player, opponent, 0, 1)  // vertical
	score += scoreDirection(e, board, player, opponent, 1, 1)  // diagonal down-right
	score += scoreDirection(e, board, player, opponent, 1, -1) // diagonal up-right

	return score
}

// scoreDirection slides a WinLength window from every cell along one
// direction and sums the window scores. Windows that run off the board
// are skipped.
func scoreDirection(e *game.Engine, board game.Board, player, opponent game.PlayerID, dc, dr int) int {
	score := 0
	winLen := e.WinLength

	for c := 0; c < e.Columns; c++ {
		for r := 0; r < e.Rows; r++ {
			endC := c + (winLen-1)*dc
			endR := r + (winLen-1)*dr
			if endC < 0 || endC >= e.Columns || endR < 0 || endR >= e.Rows {
				continue
			}

			playerCount, opponentCount, emptyCount := 0, 0, 0
			for i := 0; i < winLen; i++ {
				switch board[c+i*dc][r+i*dr] {
				case player:
					playerCount++
				case opponent:
					opponentCount++
				default:
					emptyCount++
				}
			}
			score += scoreWindow(winLen, playerCount, opponentCount, emptyCount)
		}
	}
	return score
}

// scoreWindow rates one window. The one-short opponent penalty is an
// order of magnitude heavier than the matching reward so the search
// blocks before it builds.
func scoreWindow(winLen, playerCount, opponentCount, emptyCount int) int {
	score := 0

	if playerCount == winLen {
		score += scoreWin
	} else if playerCount == winLen-1 && emptyCount == 1 {
		score += scoreOpenThree
	} else if playerCount == winLen-2 && emptyCount == 2 {
		score += scoreOpenTwo
	}

	if opponentCount == winLen {
		score += penaltyLoss
	} else if opponentCount == winLen-1 && emptyCount == 1 {
		score += penaltyOpenThree
	} else if opponentCount == winLen-2 && emptyCount == 2 {
		score += penaltyOpenTwo
	}

	return score
}
