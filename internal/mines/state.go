package mines

// CellState is the per-cell display state. A cell is in exactly one state
// at any time.
type CellState int8

const (
	Hidden CellState = iota
	Flagged
	Questioned
	Revealed
	Exploded
	MineShown
	Mismarked
)

// IsHidden reports whether the cell has not yet been exposed to the
// player. Hidden, Flagged and Questioned cells form the hidden family:
// they may still be swept or re-marked.
func (s CellState) IsHidden() bool {
	return s == Hidden || s == Flagged || s == Questioned
}

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	case Revealed:
		return "revealed"
	case Exploded:
		return "exploded"
	case MineShown:
		return "mine"
	case Mismarked:
		return "mismarked"
	}
	return "!"
}

// Phase is the game-level state machine value. Transitions only move
// forward: Start -> InProgress -> Win or Lose. Win and Lose are terminal.
type Phase int8

const (
	Start Phase = iota
	InProgress
	Win
	Lose
)

// Over reports whether the game has reached a terminal phase.
func (p Phase) Over() bool {
	return p == Win || p == Lose
}

func (p Phase) String() string {
	switch p {
	case Start:
		return "start"
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "!"
}
