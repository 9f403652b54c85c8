package piece

import "time"

// Board is the grid collaborator the controller resolves every decision
// against.
type Board interface {
	// IsValidPosition reports whether cells placed at position lie inside the
	// grid and over empty cells.
	IsValidPosition(cells [4]Vec, position Vec) bool
	// Set and Clear write and erase the piece footprint. Both are idempotent.
	Set(p *Piece)
	Clear(p *Piece)
	ClearLines()
	// SpawnPiece introduces the next piece, normally through Controller.Spawn.
	SpawnPiece()
	// RestartGame resets the board; the current piece is relinquished.
	RestartGame()
}

// Timing holds the controller delays.
type Timing struct {
	StepDelay time.Duration
	MoveDelay time.Duration
	LockDelay time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		StepDelay: time.Second,
		MoveDelay: 100 * time.Millisecond,
		LockDelay: 500 * time.Millisecond,
	}
}

// Controller drives the active piece one tick at a time. It is not safe for
// concurrent use; only its Input may be written from other goroutines.
type Controller struct {
	board  Board
	clock  Clock
	input  *Input
	timing Timing

	active   *Piece
	now      time.Time
	lastTick time.Time
	ticking  bool
}

func NewController(board Board, clock Clock, input *Input, timing Timing) *Controller {
	now := clock.Now()
	return &Controller{
		board:    board,
		clock:    clock,
		input:    input,
		timing:   timing,
		now:      now,
		lastTick: now,
	}
}

// Active returns the current piece, or nil between a lock or restart and the
// next spawn, and after a top-out.
func (c *Controller) Active() *Piece { return c.active }

func (c *Controller) Input() *Input { return c.input }

func (c *Controller) Timing() Timing { return c.timing }

// SetStepDelay changes gravity speed. The pending stepTime is kept.
func (c *Controller) SetStepDelay(d time.Duration) {
	c.timing.StepDelay = d
}

// Spawn makes a fresh piece of def at position the active piece. The
// caller decides whether the spawn position is valid.
func (c *Controller) Spawn(def *Definition, position Vec) *Piece {
	if !c.ticking {
		c.now = c.clock.Now()
		c.lastTick = c.now
	}
	p := &Piece{
		def:      def,
		position: position,
		cells:    def.Cells,
		stepTime: c.now.Add(c.timing.StepDelay),
		moveTime: c.now.Add(c.timing.MoveDelay),
	}
	c.active = p
	return p
}

// Relinquish drops the active piece without committing it.
func (c *Controller) Relinquish() {
	c.active = nil
}

// Tick advances one frame: retract, accumulate lock time, drain input, soft
// drop, gravity, commit. A piece that locks or is relinquished during the
// tick receives no further handling; actions still pending stay buffered for
// its successor.
func (c *Controller) Tick() {
	c.now = c.clock.Now()
	elapsed := c.now.Sub(c.lastTick)
	c.lastTick = c.now
	c.ticking = true
	defer func() { c.ticking = false }()

	p := c.active
	if p == nil {
		if c.input.Take(Restart) {
			c.board.RestartGame()
		}
		c.input.Discard()
		if c.active != nil {
			c.board.Set(c.active)
		}
		return
	}

	c.board.Clear(p)
	p.lockTime += elapsed

	for _, a := range Priority {
		if c.active != p {
			break
		}
		if c.input.Take(a) {
			c.handle(a)
		}
	}

	if c.active == p && c.input.SoftDropHeld() && c.now.After(p.moveTime) {
		c.Move(Down)
		p.moveTime = c.now.Add(c.timing.MoveDelay)
	}

	if c.active == p && c.now.After(p.stepTime) {
		c.Step()
	}

	if c.active != nil {
		c.board.Set(c.active)
	}
}

func (c *Controller) handle(a Action) {
	switch a {
	case Restart:
		c.board.RestartGame()
	case MoveLeft:
		c.Move(Left)
	case MoveRight:
		c.Move(Right)
	case RotateLeft:
		c.Rotate(-1)
	case RotateRight:
		c.Rotate(1)
	case HardDrop:
		c.HardDrop()
	}
}

// Move translates the active piece if the board accepts the new position.
// A rejected move leaves the piece untouched.
func (c *Controller) Move(translation Vec) bool {
	p := c.active
	if p == nil {
		return false
	}

	position := p.position.Add(translation)
	if !c.board.IsValidPosition(p.cells, position) {
		return false
	}

	p.position = position
	p.moveTime = c.now.Add(c.timing.MoveDelay)
	p.lockTime = 0
	return true
}

// Step is one gravity step. The lock check runs after the downward move
// whatever its outcome.
func (c *Controller) Step() {
	p := c.active
	if p == nil {
		return
	}

	p.stepTime = c.now.Add(c.timing.StepDelay)
	c.Move(Down)

	if p.lockTime >= c.timing.LockDelay {
		c.Lock()
	}
}

// HardDrop drops the piece as far as it goes and locks it at once.
func (c *Controller) HardDrop() {
	if c.active == nil {
		return
	}
	for c.Move(Down) {
	}
	c.Lock()
}

// Rotate turns the piece by direction (-1 or +1) and resolves wall kicks.
// When no kick fits the rotation is undone by the inverse transform and the
// piece is exactly as before.
func (c *Controller) Rotate(direction int) bool {
	p := c.active
	if p == nil {
		return false
	}

	original := p.rotation
	p.rotation = wrap(p.rotation+direction, 0, 4)
	p.applyRotation(direction)

	if c.testWallKicks(p.rotation, direction) {
		return true
	}

	p.rotation = original
	p.applyRotation(-direction)
	return false
}

func (c *Controller) testWallKicks(rotation, direction int) bool {
	for _, translation := range c.active.def.KickRow(rotation, direction) {
		if c.Move(translation) {
			return true
		}
	}
	return false
}

// Lock commits the piece into the board, clears lines and asks for the next
// piece. The locked piece is no longer active afterwards.
func (c *Controller) Lock() {
	p := c.active
	if p == nil {
		return
	}
	c.board.Set(p)
	c.board.ClearLines()
	c.active = nil
	c.board.SpawnPiece()
}
