package game

// State is a full snapshot of a game. Transitions never mutate a State
// in place; ApplyMove derives a new value and leaves the input alone.
type State struct {
	Board         Board      `json:"board"`
	CurrentPlayer PlayerID   `json:"current_player"`
	Winner        PlayerID   `json:"winner"`
	Status        GameStatus `json:"status"`
}

// IsOver reports whether the game has ended, by win or by draw.
func (s State) IsOver() bool {
	return s.Status != StatusActive
}

// Equal reports whether two states describe the same position.
func (s State) Equal(other State) bool {
	if s.CurrentPlayer != other.CurrentPlayer ||
		s.Winner != other.Winner ||
		s.Status != other.Status ||
		len(s.Board) != len(other.Board) {
		return false
	}
	for c := range s.Board {
		if len(s.Board[c]) != len(other.Board[c]) {
			return false
		}
		for r := range s.Board[c] {
			if s.Board[c][r] != other.Board[c][r] {
				return false
			}
		}
	}
	return true
}
