// Package mines implements the Minesweeper board state machine: a grid
// of cells revealed by sweeps, flood-fill auto-reveal of mine-free
// regions, deferred mine placement and win/lose detection.
package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Board owns the cell arena and orchestrates mine placement, sweeps,
// mark toggling and phase transitions. It is not safe for concurrent
// use; callers that share a board across goroutines must serialize
// access externally.
type Board struct {
	width, height int
	mineCount     int
	hiddenCount   int
	phase         Phase
	cells         []cell
	rnd           *rand.Rand
}

// NewBoard builds a board with no mines placed yet. Mines are
// distributed on the first sweep so that the first-clicked cell is never
// a mine. r may be nil, in which case a generator is seeded lazily when
// one is first needed.
func NewBoard(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if mineCount < 0 || mineCount > width*height-1 {
		return nil, ErrTooManyMines
	}
	b := &Board{
		width:       width,
		height:      height,
		mineCount:   mineCount,
		hiddenCount: width * height,
		phase:       Start,
		cells:       make([]cell, width*height),
		rnd:         r,
	}
	b.wireNeighbors()
	return b, nil
}

// NewBoardWithLayout builds a board from an explicit row-major mine
// layout; any nonzero entry is a mine. The board skips the Start phase
// since placement is already known.
func NewBoardWithLayout(width, height int, layout []int) (*Board, error) {
	mineCount := 0
	for _, m := range layout {
		if m != 0 {
			mineCount++
		}
	}
	b, err := NewBoard(width, height, mineCount, nil)
	if err != nil {
		return nil, err
	}
	if len(layout) != width*height {
		return nil, ErrBadLayout
	}
	for i, m := range layout {
		if m == 0 {
			continue
		}
		if err := b.placeMine(i); err != nil {
			return nil, err
		}
	}
	b.phase = InProgress
	return b, nil
}

func (b *Board) wireNeighbors() {
	for y := range b.height {
		for x := range b.width {
			c := &b.cells[y*b.width+x]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
						continue
					}
					c.neighbors = append(c.neighbors, ny*b.width+nx)
				}
			}
		}
	}
}

func (b *Board) index(x, y int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, ErrOutOfBounds
	}
	return y*b.width + x, nil
}

// placeMine arms the cell at i and bumps the adjacency count of every
// neighbor. Placement is not idempotent.
func (b *Board) placeMine(i int) error {
	c := &b.cells[i]
	if c.mine {
		return ErrMineExists
	}
	c.mine = true
	for _, n := range c.neighbors {
		b.cells[n].adjacent++
	}
	return nil
}

// initializeMines distributes exactly mineCount mines over a uniformly
// shuffled permutation of cell indices, skipping the first-clicked cell.
func (b *Board) initializeMines(initX, initY int) {
	safe := initY*b.width + initX
	remaining := b.mineCount
	for _, i := range b.rand().Perm(len(b.cells)) {
		if remaining == 0 {
			break
		}
		if i == safe {
			continue
		}
		if err := b.placeMine(i); err != nil {
			panic(AssertionError{"mine placed twice during initial distribution"})
		}
		remaining--
	}
}

func (b *Board) rand() *rand.Rand {
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return b.rnd
}

// Sweep clicks the cell at x, y. On the very first sweep of a random
// board the mines are distributed first, so that cell is guaranteed
// safe. Sweeping a flagged or already revealed cell changes nothing and
// returns the current phase.
func (b *Board) Sweep(x, y int) (Phase, error) {
	i, err := b.index(x, y)
	if err != nil {
		return b.phase, err
	}
	if b.phase.Over() {
		return b.phase, nil
	}
	if b.phase == Start {
		b.initializeMines(x, y)
		b.phase = InProgress
	}
	revealed, state := b.click(i)
	b.hiddenCount -= revealed
	if state == Exploded {
		b.revealAll()
		b.phase = Lose
	} else if b.hiddenCount == b.mineCount {
		// every safe cell is open
		b.revealAll()
		b.phase = Win
	}
	return b.phase, nil
}

// click reveals the cell at i and reports how many cells the click
// opened in total along with the cell's resulting state.
func (b *Board) click(i int) (int, CellState) {
	c := &b.cells[i]
	if !c.state.IsHidden() || c.state == Flagged {
		return 0, c.state
	}
	if c.mine {
		c.state = Exploded
		return 1, c.state
	}
	c.state = Revealed
	revealed := 1
	if c.adjacent == 0 {
		revealed += b.floodFill(i)
	}
	return revealed, c.state
}

// floodFill opens the maximal connected region of mine-free cells
// reachable from the zero-adjacency cell at start, plus the region's
// numbered border. Flagged cells act as barriers: they are marked
// visited but never revealed or expanded. The visited set is shared
// across the whole traversal so each cell is processed at most once.
func (b *Board) floodFill(start int) int {
	visited := make([]bool, len(b.cells))
	visited[start] = true
	stack := []int{start}
	revealed := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.cells[i].neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			c := &b.cells[n]
			if c.mine || c.state == Flagged || !c.state.IsHidden() {
				continue
			}
			c.state = Revealed
			revealed++
			if c.adjacent == 0 {
				stack = append(stack, n)
			}
		}
	}
	return revealed
}

// ToggleMark cycles the mark on a hidden-family cell and returns the
// resulting state. Marking never touches the phase or the hidden count.
func (b *Board) ToggleMark(x, y int) (CellState, error) {
	i, err := b.index(x, y)
	if err != nil {
		return 0, err
	}
	return b.cells[i].toggleMark(), nil
}

// Forfeit gives up an unfinished game: the board is revealed and the
// phase moves to Lose without an explosion. Forfeiting a finished game
// changes nothing.
func (b *Board) Forfeit() Phase {
	if !b.phase.Over() {
		b.phase = Lose
		b.revealAll()
	}
	return b.phase
}

func (b *Board) revealAll() {
	for i := range b.cells {
		b.cells[i].reveal()
	}
}

// CellState returns the display state of the cell at x, y.
func (b *Board) CellState(x, y int) (CellState, error) {
	i, err := b.index(x, y)
	if err != nil {
		return 0, err
	}
	return b.cells[i].state, nil
}

// AdjacentMines returns the frozen adjacent-mine count of a revealed
// cell. Querying a cell that is still hidden is a caller bug and fails
// with [ErrCellHidden].
func (b *Board) AdjacentMines(x, y int) (int, error) {
	i, err := b.index(x, y)
	if err != nil {
		return 0, err
	}
	c := b.cells[i]
	if c.state.IsHidden() {
		return 0, ErrCellHidden
	}
	return c.adjacent, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) MineCount() int {
	return b.mineCount
}

func (b *Board) Phase() Phase {
	return b.phase
}

// InBounds reports whether x, y address a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
