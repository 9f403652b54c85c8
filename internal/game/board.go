package game

import (
	"github.com/hersh/kicktris/internal/piece"
	"github.com/kamstrup/intmap"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// SpawnPosition is where every new piece appears: the upper middle of the
// board, leaving room for the tallest base shape.
var SpawnPosition = piece.Vec{X: 4, Y: 18}

type Cell struct {
	Filled bool
	Color  int
}

// Board is the playing field. Cells is indexed [y][x] with y = 0 the bottom
// row. Between ticks it also holds the active piece's footprint.
type Board struct {
	Cells  [][]Cell
	Width  int
	Height int

	// filled cell count per row, kept in step with every write
	rowFill *intmap.Map[int, int]
}

func NewBoard() *Board {
	return NewBoardSize(BoardWidth, BoardHeight)
}

func NewBoardSize(width, height int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		Cells:   cells,
		Width:   width,
		Height:  height,
		rowFill: intmap.New[int, int](height),
	}
}

func (b *Board) inBounds(at piece.Vec) bool {
	return at.X >= 0 && at.X < b.Width && at.Y >= 0 && at.Y < b.Height
}

// Filled reports whether the cell at is occupied. Out of bounds counts as
// occupied.
func (b *Board) Filled(at piece.Vec) bool {
	if !b.inBounds(at) {
		return true
	}
	return b.Cells[at.Y][at.X].Filled
}

func (b *Board) IsValidPosition(cells [4]piece.Vec, position piece.Vec) bool {
	for _, c := range cells {
		if b.Filled(position.Add(c)) {
			return false
		}
	}
	return true
}

// Put writes a single cell. Writes outside the board are dropped.
func (b *Board) Put(at piece.Vec, c Cell) {
	if !b.inBounds(at) {
		return
	}
	prev := b.Cells[at.Y][at.X]
	b.Cells[at.Y][at.X] = c
	if prev.Filled == c.Filled {
		return
	}
	n, _ := b.rowFill.Get(at.Y)
	if c.Filled {
		n++
	} else {
		n--
	}
	b.rowFill.Put(at.Y, n)
}

func (b *Board) Set(p *piece.Piece) {
	for _, at := range p.Footprint() {
		b.Put(at, Cell{Filled: true, Color: p.Color()})
	}
}

func (b *Board) Clear(p *piece.Piece) {
	for _, at := range p.Footprint() {
		b.Put(at, Cell{})
	}
}

// RowFill returns how many cells of row y are occupied.
func (b *Board) RowFill(y int) int {
	n, _ := b.rowFill.Get(y)
	return n
}

func (b *Board) IsLineFull(y int) bool {
	return b.RowFill(y) == b.Width
}

// ClearLines removes every full row, drops the rows above it and returns the
// number of rows removed.
func (b *Board) ClearLines() int {
	linesCleared := 0
	kept := make([][]Cell, 0, b.Height)

	for y := 0; y < b.Height; y++ {
		if b.IsLineFull(y) {
			linesCleared++
			continue
		}
		kept = append(kept, b.Cells[y])
	}

	if linesCleared == 0 {
		return 0
	}

	for len(kept) < b.Height {
		kept = append(kept, make([]Cell, b.Width))
	}
	b.Cells = kept
	b.recount()
	return linesCleared
}

func (b *Board) recount() {
	b.rowFill.Clear()
	for y, row := range b.Cells {
		n := 0
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
		if n > 0 {
			b.rowFill.Put(y, n)
		}
	}
}

func (b *Board) Reset() {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{}
		}
	}
	b.rowFill.Clear()
}

// GhostPosition is where p would come to rest by falling straight down. The
// piece's own footprint is treated as empty, so it works while p is set.
func (b *Board) GhostPosition(p *piece.Piece) piece.Vec {
	own := p.Footprint()
	cells := p.Cells()
	position := p.Position()

	for {
		next := position.Add(piece.Down)
		if !b.fitsIgnoring(cells, next, own) {
			return position
		}
		position = next
	}
}

func (b *Board) fitsIgnoring(cells [4]piece.Vec, position piece.Vec, ignore [4]piece.Vec) bool {
	for _, c := range cells {
		at := position.Add(c)
		if !b.inBounds(at) {
			return false
		}
		if !b.Cells[at.Y][at.X].Filled {
			continue
		}
		own := false
		for _, o := range ignore {
			if o == at {
				own = true
				break
			}
		}
		if !own {
			return false
		}
	}
	return true
}
