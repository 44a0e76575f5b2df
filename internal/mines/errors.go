package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid board size")
	ErrTooManyMines      = errors.New("too many mines")
	ErrBadLayout         = errors.New("mine layout does not match board size")
	ErrOutOfBounds       = errors.New("cell coordinates out of bounds")
	ErrMineExists        = errors.New("mine already exists at cell")
	ErrCellHidden        = errors.New("cell is not yet revealed")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
