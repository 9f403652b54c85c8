package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardShapesValidate(t *testing.T) {
	defs := Standard()
	require.Len(t, defs, 7)
	for i, def := range defs {
		assert.Equal(t, ID(i), def.ID)
		assert.NoError(t, def.Validate(), "shape %s", def.ID)
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(ShapeO)
	require.True(t, ok)
	assert.Equal(t, CenterSymmetric, def.Class)

	def, ok = Lookup(ShapeT)
	require.True(t, ok)
	assert.Equal(t, Regular, def.Class)

	_, ok = Lookup(ID(42))
	assert.False(t, ok)
	assert.Equal(t, "ID(42)", ID(42).String())
}

func TestValidateRejectsBadKickTables(t *testing.T) {
	base := *mustLookup(ShapeT)

	short := base
	short.Kicks = base.Kicks[:7]
	assert.ErrorIs(t, short.Validate(), ErrInvalidShape)

	long := base
	long.Kicks = append(append([][]Vec{}, base.Kicks...), []Vec{{0, 0}})
	assert.ErrorIs(t, long.Validate(), ErrInvalidShape)

	empty := base
	empty.Kicks = append([][]Vec{}, base.Kicks...)
	empty.Kicks[3] = nil
	assert.ErrorIs(t, empty.Validate(), ErrInvalidShape)

	badClass := base
	badClass.Class = Class(9)
	assert.ErrorIs(t, badClass.Validate(), ErrInvalidShape)
}

func TestKickRowSelection(t *testing.T) {
	rows := make([][]Vec, KickRows)
	for i := range rows {
		rows[i] = []Vec{{X: i}}
	}
	def := &Definition{Kicks: rows}

	tests := []struct {
		rotation, direction, want int
	}{
		{rotation: 1, direction: 1, want: 2},
		{rotation: 2, direction: 1, want: 4},
		{rotation: 3, direction: 1, want: 6},
		{rotation: 0, direction: 1, want: 0},
		{rotation: 0, direction: -1, want: 7},
		{rotation: 1, direction: -1, want: 1},
		{rotation: 3, direction: -1, want: 5},
	}
	for _, tt := range tests {
		row := def.KickRow(tt.rotation, tt.direction)
		assert.Equal(t, tt.want, row[0].X, "rotation %d direction %d", tt.rotation, tt.direction)
	}
}

func TestOrientations(t *testing.T) {
	o := mustLookup(ShapeO).Orientations()
	for i := range o {
		assert.ElementsMatch(t, o[0][:], o[i][:], "rotation %d", i)
	}

	i := mustLookup(ShapeI).Orientations()
	assert.Equal(t, mustLookup(ShapeI).Cells, i[0])
	assert.Equal(t, [4]Vec{{1, 2}, {1, 1}, {1, 0}, {1, -1}}, i[1])
	assert.Equal(t, [4]Vec{{2, 0}, {1, 0}, {0, 0}, {-1, 0}}, i[2])
}
