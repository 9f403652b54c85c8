package piece

import "math"

// rotateCell applies the 90° transform in direction dir (+1 clockwise, -1
// counter-clockwise). Running it again with -dir restores the input exactly
// for both classes.
func rotateCell(c Vec, class Class, dir int) Vec {
	m := RotationCoefficients
	d := float64(dir)
	x, y := float64(c.X), float64(c.Y)

	round := math.RoundToEven
	if class == CenterSymmetric {
		x -= 0.5
		y -= 0.5
		round = math.Ceil
	}

	return Vec{
		X: int(round(x*m[0]*d + y*m[1]*d)),
		Y: int(round(x*m[2]*d + y*m[3]*d)),
	}
}

func rotateCells(cells *[4]Vec, class Class, dir int) {
	for i := range cells {
		cells[i] = rotateCell(cells[i], class, dir)
	}
}

// wrap maps input into [lo, hi).
func wrap(input, lo, hi int) int {
	n := hi - lo
	r := (input - lo) % n
	if r < 0 {
		r += n
	}
	return lo + r
}
