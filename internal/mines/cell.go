package mines

// cell is a single arena slot in a board's grid. Neighbor relationships
// are index lists into the arena rather than pointers, so the cyclic
// adjacency graph never turns into a cyclic ownership graph.
type cell struct {
	state     CellState
	mine      bool
	adjacent  int
	neighbors []int
}

// toggleMark cycles Hidden -> Flagged -> Questioned -> Hidden. Revealed
// cells are left alone.
func (c *cell) toggleMark() CellState {
	switch c.state {
	case Hidden:
		c.state = Flagged
	case Flagged:
		c.state = Questioned
	case Questioned:
		c.state = Hidden
	}
	return c.state
}

// reveal exposes the cell at game end without triggering an explosion or
// a flood fill. A flagged mine becomes Mismarked; any other hidden cell
// shows its true contents.
func (c *cell) reveal() {
	if !c.state.IsHidden() {
		return
	}
	switch {
	case c.mine && c.state == Flagged:
		c.state = Mismarked
	case c.mine:
		c.state = MineShown
	default:
		c.state = Revealed
	}
}
