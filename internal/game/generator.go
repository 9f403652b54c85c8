package game

import (
	"math/rand"

	"github.com/hersh/kicktris/internal/piece"
)

// PieceGenerator produces shapes using the 7-bag randomizer system.
// When created with the same seed, two generators produce identical sequences.
type PieceGenerator struct {
	rng *rand.Rand
	bag []*piece.Definition
}

// NewPieceGenerator creates a seeded 7-bag piece generator.
func NewPieceGenerator(seed int64) *PieceGenerator {
	return &PieceGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next shape from the 7-bag.
func (pg *PieceGenerator) Next() *piece.Definition {
	if len(pg.bag) == 0 {
		pg.refillBag()
	}
	def := pg.bag[0]
	pg.bag = pg.bag[1:]
	return def
}

// Peek returns the next shape without consuming it.
func (pg *PieceGenerator) Peek() *piece.Definition {
	if len(pg.bag) == 0 {
		pg.refillBag()
	}
	return pg.bag[0]
}

func (pg *PieceGenerator) refillBag() {
	pg.bag = piece.Standard()
	// Fisher-Yates shuffle
	for i := len(pg.bag) - 1; i > 0; i-- {
		j := pg.rng.Intn(i + 1)
		pg.bag[i], pg.bag[j] = pg.bag[j], pg.bag[i]
	}
}
