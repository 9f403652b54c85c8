package piece

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is wrapped by every Definition.Validate failure.
var ErrInvalidShape = errors.New("invalid shape definition")

// KickRows is the number of wall-kick rows a table must carry: two per
// destination rotation, one for each direction.
const KickRows = 8

// Vec is a cell-space coordinate or offset. Y points up.
type Vec struct {
	X, Y int
}

var (
	Left  = Vec{X: -1}
	Right = Vec{X: 1}
	Down  = Vec{Y: -1}
)

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

type ID int

const (
	ShapeI ID = iota
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

var idNames = [...]string{"I", "O", "T", "J", "L", "S", "Z"}

func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// Class selects the rounding rule of the rotation transform.
type Class int

const (
	// Regular shapes pivot on a cell center and round to nearest.
	Regular Class = iota
	// CenterSymmetric shapes pivot on a cell corner: offsets are shifted by
	// half a cell before the multiply and rounded up afterwards.
	CenterSymmetric
)

// RotationCoefficients is the 90° rotation matrix in row-major order:
// cos, sin, -sin, cos.
var RotationCoefficients = [4]float64{0, 1, -1, 0}

// Definition is the immutable data shared by every piece of one shape.
type Definition struct {
	ID    ID
	Cells [4]Vec
	Class Class
	Kicks [][]Vec
	Color int
}

// KickRow returns the wall-kick offsets tried when rotating into rotation
// with the given direction.
func (d *Definition) KickRow(rotation, direction int) []Vec {
	index := rotation * 2
	if direction < 0 {
		index--
	}
	return d.Kicks[wrap(index, 0, len(d.Kicks))]
}

// Orientations returns the cells of each rotation index, starting from the
// spawn orientation and turning clockwise.
func (d *Definition) Orientations() [4][4]Vec {
	var out [4][4]Vec
	cells := d.Cells
	for i := range out {
		out[i] = cells
		rotateCells(&cells, d.Class, 1)
	}
	return out
}

// Validate checks the definition once at load time. Tick-time code assumes a
// valid table and never bounds-checks it again.
func (d *Definition) Validate() error {
	if len(d.Kicks) != KickRows {
		return fmt.Errorf("%w: shape %s has %d kick rows, want %d", ErrInvalidShape, d.ID, len(d.Kicks), KickRows)
	}
	for i, row := range d.Kicks {
		if len(row) == 0 {
			return fmt.Errorf("%w: shape %s kick row %d is empty", ErrInvalidShape, d.ID, i)
		}
	}
	if d.Class != Regular && d.Class != CenterSymmetric {
		return fmt.Errorf("%w: shape %s has unknown class %d", ErrInvalidShape, d.ID, d.Class)
	}

	cells := d.Cells
	for turn := 0; turn < 4; turn++ {
		for _, dir := range []int{1, -1} {
			probe := cells
			rotateCells(&probe, d.Class, dir)
			rotateCells(&probe, d.Class, -dir)
			if probe != cells {
				return fmt.Errorf("%w: shape %s rotation %d does not invert", ErrInvalidShape, d.ID, turn)
			}
		}
		rotateCells(&cells, d.Class, 1)
	}
	return nil
}

var kicksI = [][]Vec{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var kicksJLOSTZ = [][]Vec{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var standard = []*Definition{
	{ID: ShapeI, Cells: [4]Vec{{-1, 1}, {0, 1}, {1, 1}, {2, 1}}, Class: CenterSymmetric, Kicks: kicksI, Color: 6},
	{ID: ShapeO, Cells: [4]Vec{{0, 1}, {1, 1}, {0, 0}, {1, 0}}, Class: CenterSymmetric, Kicks: kicksJLOSTZ, Color: 3},
	{ID: ShapeT, Cells: [4]Vec{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}, Class: Regular, Kicks: kicksJLOSTZ, Color: 5},
	{ID: ShapeJ, Cells: [4]Vec{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Class: Regular, Kicks: kicksJLOSTZ, Color: 4},
	{ID: ShapeL, Cells: [4]Vec{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Class: Regular, Kicks: kicksJLOSTZ, Color: 7},
	{ID: ShapeS, Cells: [4]Vec{{0, 1}, {1, 1}, {-1, 0}, {0, 0}}, Class: Regular, Kicks: kicksJLOSTZ, Color: 2},
	{ID: ShapeZ, Cells: [4]Vec{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, Class: Regular, Kicks: kicksJLOSTZ, Color: 1},
}

func init() {
	for _, d := range standard {
		if err := d.Validate(); err != nil {
			panic(err)
		}
	}
}

// Standard returns the seven built-in shapes in ID order.
func Standard() []*Definition {
	out := make([]*Definition, len(standard))
	copy(out, standard)
	return out
}

// Lookup returns the built-in definition for id.
func Lookup(id ID) (*Definition, bool) {
	if id < 0 || int(id) >= len(standard) {
		return nil, false
	}
	return standard[id], true
}
