package bot

import (
	"math/rand"
	"time"

	"github.com/connect4/server/internal/game"
)

// ErrNoLegalMoves means SelectMove was asked for a move in a position
// with no playable column. Correct callers never invoke the selector on
// a finished game, so this is a programmer error, not a game outcome.
const ErrNoLegalMoves = game.Error("no legal moves available")

// Selector picks moves for the computer side. Randomness is confined to
// the injected source so the weak tier is reproducible under test and
// the other tiers stay fully deterministic.
type Selector struct {
	engine *game.Engine
	rng    *rand.Rand
}

// NewSelector builds a selector for the engine. A nil rng gets a
// time-seeded source.
func NewSelector(engine *game.Engine, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{engine: engine, rng: rng}
}

// SelectMove returns the column the computer plays at the given
// difficulty.
func (s *Selector) SelectMove(state game.State, difficulty Difficulty) (int, error) {
	legal := s.engine.LegalColumns(state.Board)
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}

	switch difficulty {
	case DifficultyWeak:
		return s.randomColumn(legal), nil
	case DifficultyModerate:
		return s.moderateMove(state, legal), nil
	default:
		return bestMove(s.engine, state), nil
	}
}

func (s *Selector) randomColumn(legal []int) int {
	return legal[s.rng.Intn(len(legal))]
}

// moderateMove is a one-ply lookahead: take an immediate win, otherwise
// block the opponent's immediate win, otherwise play at random. Both
// checks probe moves speculatively through ApplyMove and inspect the
// winner of the result.
func (s *Selector) moderateMove(state game.State, legal []int) int {
	for _, col := range legal {
		probe := s.engine.ApplyMove(state, col)
		if probe.Winner == state.CurrentPlayer {
			return col
		}
	}

	opponent := state.CurrentPlayer.Opponent()
	flipped := state
	flipped.CurrentPlayer = opponent
	for _, col := range legal {
		probe := s.engine.ApplyMove(flipped, col)
		if probe.Winner == opponent {
			return col
		}
	}

	return s.randomColumn(legal)
}
