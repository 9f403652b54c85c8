package piece

import "time"

type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeBoard is a bounded grid with optional blocked cells. When valid is set
// it replaces the grid test entirely.
type fakeBoard struct {
	width, height int
	blocked       map[Vec]bool
	valid         func(cells [4]Vec, position Vec) bool

	ctrl     *Controller
	spawnDef *Definition
	spawnPos Vec

	calls      []string
	sets       int
	clears     int
	clearLines int
	spawns     int
	restarts   int
	locked     []*Piece
}

func newFakeBoard(width, height int) *fakeBoard {
	return &fakeBoard{width: width, height: height, blocked: map[Vec]bool{}}
}

func (b *fakeBoard) IsValidPosition(cells [4]Vec, position Vec) bool {
	if b.valid != nil {
		return b.valid(cells, position)
	}
	for _, c := range cells {
		at := position.Add(c)
		if at.X < 0 || at.X >= b.width || at.Y < 0 || at.Y >= b.height {
			return false
		}
		if b.blocked[at] {
			return false
		}
	}
	return true
}

func (b *fakeBoard) Set(p *Piece) {
	b.calls = append(b.calls, "set")
	b.sets++
}

func (b *fakeBoard) Clear(p *Piece) {
	b.calls = append(b.calls, "clear")
	b.clears++
}

func (b *fakeBoard) ClearLines() {
	b.calls = append(b.calls, "clear-lines")
	b.clearLines++
	if b.ctrl != nil && b.ctrl.Active() != nil {
		b.locked = append(b.locked, b.ctrl.Active())
	}
}

func (b *fakeBoard) SpawnPiece() {
	b.calls = append(b.calls, "spawn")
	b.spawns++
	if b.ctrl != nil && b.spawnDef != nil {
		b.ctrl.Spawn(b.spawnDef, b.spawnPos)
	}
}

func (b *fakeBoard) RestartGame() {
	b.calls = append(b.calls, "restart")
	b.restarts++
	if b.ctrl != nil {
		b.ctrl.Relinquish()
		if b.spawnDef != nil {
			b.ctrl.Spawn(b.spawnDef, b.spawnPos)
		}
	}
}

func mustLookup(id ID) *Definition {
	def, ok := Lookup(id)
	if !ok {
		panic("unknown shape " + id.String())
	}
	return def
}

func newTestController(board *fakeBoard, timing Timing) (*Controller, *manualClock) {
	clock := newManualClock()
	ctrl := NewController(board, clock, NewInput(), timing)
	board.ctrl = ctrl
	return ctrl, clock
}
