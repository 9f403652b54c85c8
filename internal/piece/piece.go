package piece

import "time"

// Piece is the active falling piece. Only the Controller that spawned it
// mutates it; collaborators read it through the accessors.
type Piece struct {
	def      *Definition
	position Vec
	rotation int
	cells    [4]Vec

	stepTime time.Time
	moveTime time.Time
	lockTime time.Duration
}

func (p *Piece) Definition() *Definition { return p.def }
func (p *Piece) Position() Vec { return p.position }
func (p *Piece) Rotation() int { return p.rotation }
func (p *Piece) Color() int { return p.def.Color }

// Cells returns the offsets of the four cells relative to Position.
func (p *Piece) Cells() [4]Vec { return p.cells }

// Footprint returns the absolute grid coordinates of the four cells.
func (p *Piece) Footprint() [4]Vec {
	var out [4]Vec
	for i, c := range p.cells {
		out[i] = p.position.Add(c)
	}
	return out
}

// LockTime is the time accumulated since the last accepted move or rotation.
func (p *Piece) LockTime() time.Duration { return p.lockTime }

func (p *Piece) StepTime() time.Time { return p.stepTime }
func (p *Piece) MoveTime() time.Time { return p.moveTime }

func (p *Piece) applyRotation(dir int) {
	rotateCells(&p.cells, p.def.Class, dir)
}

// Clock supplies tick timestamps. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, whose monotonic reading is what Sub and After
// compare.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
