package game

import (
	"testing"

	"github.com/hersh/kicktris/internal/piece"
	"github.com/stretchr/testify/assert"
)

func TestPieceGeneratorBagHoldsEveryShape(t *testing.T) {
	pg := NewPieceGenerator(42)
	for bag := 0; bag < 3; bag++ {
		seen := map[piece.ID]int{}
		for i := 0; i < 7; i++ {
			seen[pg.Next().ID]++
		}
		assert.Len(t, seen, 7, "bag %d", bag)
		for id, n := range seen {
			assert.Equal(t, 1, n, "shape %s in bag %d", id, bag)
		}
	}
}

func TestPieceGeneratorIsDeterministic(t *testing.T) {
	a := NewPieceGenerator(99)
	b := NewPieceGenerator(99)
	for i := 0; i < 21; i++ {
		assert.Equal(t, a.Next().ID, b.Next().ID)
	}
}

func TestPieceGeneratorPeek(t *testing.T) {
	pg := NewPieceGenerator(5)
	for i := 0; i < 10; i++ {
		peeked := pg.Peek()
		assert.Same(t, peeked, pg.Next())
	}
}
