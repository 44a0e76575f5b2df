package mines

import (
	"strconv"
	"strings"
)

// String renders the board one glyph per cell, one newline-terminated
// line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			sb.WriteString(b.glyph(y*b.width + x))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Rows renders the board as one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for y := range b.height {
		var sb strings.Builder
		for x := range b.width {
			sb.WriteString(b.glyph(y*b.width + x))
		}
		rows[y] = sb.String()
	}
	return rows
}

func (b *Board) glyph(i int) string {
	c := b.cells[i]
	switch c.state {
	case Hidden:
		return "~"
	case Flagged:
		return "P"
	case Questioned:
		return "?"
	case MineShown:
		return "*"
	case Exploded:
		return "#"
	case Mismarked:
		return "X"
	case Revealed:
		if c.adjacent == 0 {
			return "_"
		}
		return strconv.Itoa(c.adjacent)
	}
	return "!"
}
