package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// boardWire is the serialized form of a board. Neighbor wiring is
// derived from the dimensions and is not stored.
type boardWire struct {
	Width, Height int
	MineCount     int
	HiddenCount   int
	Phase         Phase
	States        []CellState
	Mines         []bool
	Adjacent      []int
}

// GobEncode implements [gob.GobEncoder].
func (b *Board) GobEncode() ([]byte, error) {
	w := boardWire{
		Width:       b.width,
		Height:      b.height,
		MineCount:   b.mineCount,
		HiddenCount: b.hiddenCount,
		Phase:       b.phase,
		States:      make([]CellState, len(b.cells)),
		Mines:       make([]bool, len(b.cells)),
		Adjacent:    make([]int, len(b.cells)),
	}
	for i, c := range b.cells {
		w.States[i] = c.state
		w.Mines[i] = c.mine
		w.Adjacent[i] = c.adjacent
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements [gob.GobDecoder]. The random generator is not
// carried across encoding; a decoded board re-seeds one lazily if its
// mines are still undistributed.
func (b *Board) GobDecode(data []byte) error {
	var w boardWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	n := w.Width * w.Height
	if w.Width <= 0 || w.Height <= 0 ||
		len(w.States) != n || len(w.Mines) != n || len(w.Adjacent) != n {
		return fmt.Errorf("invalid board snapshot (%dx%d, %d cells)",
			w.Width, w.Height, len(w.States))
	}
	b.width = w.Width
	b.height = w.Height
	b.mineCount = w.MineCount
	b.hiddenCount = w.HiddenCount
	b.phase = w.Phase
	b.rnd = nil
	b.cells = make([]cell, n)
	for i := range b.cells {
		b.cells[i] = cell{
			state:    w.States[i],
			mine:     w.Mines[i],
			adjacent: w.Adjacent[i],
		}
	}
	b.wireNeighbors()
	return nil
}

// Bytes serializes the board for storage.
func (b *Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(b)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBoard restores a board serialized with [Board.Bytes].
func DecodeBoard(buf []byte) (*Board, error) {
	var b Board
	err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
