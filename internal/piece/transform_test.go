package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, 3, wrap(-1, 0, 4))
	assert.Equal(t, 0, wrap(4, 0, 4))
	assert.Equal(t, 2, wrap(2, 0, 4))
	assert.Equal(t, 7, wrap(-1, 0, 8))
	assert.Equal(t, 0, wrap(-8, 0, 4))
	assert.Equal(t, 5, wrap(9, 2, 6))
}

func TestRotateRegularRoundsToNearest(t *testing.T) {
	cells := mustLookup(ShapeT).Cells
	rotateCells(&cells, Regular, 1)
	assert.Equal(t, [4]Vec{{1, 0}, {0, 1}, {0, 0}, {0, -1}}, cells)

	cells = mustLookup(ShapeT).Cells
	rotateCells(&cells, Regular, -1)
	assert.Equal(t, [4]Vec{{-1, 0}, {0, -1}, {0, 0}, {0, 1}}, cells)
}

func TestRotateCenterSymmetricBlockIsInvariant(t *testing.T) {
	cells := [4]Vec{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, dir := range []int{1, -1} {
		rotated := cells
		rotateCells(&rotated, CenterSymmetric, dir)
		assert.ElementsMatch(t, cells[:], rotated[:], "direction %d", dir)
	}
}

func TestRotateCenterSymmetricUsesCeiling(t *testing.T) {
	cells := mustLookup(ShapeI).Cells
	rotateCells(&cells, CenterSymmetric, 1)
	assert.Equal(t, [4]Vec{{1, 2}, {1, 1}, {1, 0}, {1, -1}}, cells)

	// Without the half-cell shift the bar lands one row lower.
	nearest := mustLookup(ShapeI).Cells
	rotateCells(&nearest, Regular, 1)
	assert.NotEqual(t, cells, nearest)
}

func TestRotateInverseIsExact(t *testing.T) {
	for _, def := range Standard() {
		cells := def.Cells
		for turn := 0; turn < 4; turn++ {
			for _, dir := range []int{1, -1} {
				probe := cells
				rotateCells(&probe, def.Class, dir)
				rotateCells(&probe, def.Class, -dir)
				assert.Equal(t, cells, probe, "shape %s turn %d dir %d", def.ID, turn, dir)
			}
			rotateCells(&cells, def.Class, 1)
		}
		assert.Equal(t, def.Cells, cells, "shape %s after four turns", def.ID)
	}
}
