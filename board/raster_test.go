package board_test

import (
	"testing"

	"github.com/jerry123z/Settler-Zero/board"
	"github.com/jerry123z/Settler-Zero/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRaster_Bounds pins the bounding box of the standard board: node
// columns span 3..23 and node rows 2..12, so the raster is 21×11.
func TestRaster_Bounds(t *testing.T) {
	r := board.NewRaster()
	assert.Equal(t, 3, r.MinCol)
	assert.Equal(t, 2, r.MinRow)
	assert.Equal(t, 21, r.Width)
	assert.Equal(t, 11, r.Height)
	assert.Equal(t, 231, r.Size())
}

// TestRaster_IndexRoundTrip sweeps every lattice cell: CoordAt is the
// exact inverse of Index, and both reject out-of-box input.
func TestRaster_IndexRoundTrip(t *testing.T) {
	r := board.NewRaster()
	for i := 0; i < r.Size(); i++ {
		c, ok := r.CoordAt(i)
		require.True(t, ok, "index %d", i)
		require.True(t, r.Contains(c))

		back, ok := r.Index(c)
		require.True(t, ok, "coord %v", c)
		assert.Equal(t, i, back)
	}

	_, ok := r.CoordAt(-1)
	assert.False(t, ok)
	_, ok = r.CoordAt(r.Size())
	assert.False(t, ok)
	_, ok = r.Index(grid.Coord{Col: 0, Row: 0})
	assert.False(t, ok)
}

// TestRaster_CoversBoard: every legal cell coordinate indexes into the
// raster.
func TestRaster_CoversBoard(t *testing.T) {
	r := board.NewRaster()
	for _, coords := range [][]grid.Coord{
		board.TileCoords(),
		board.EdgeCoords(),
		board.NodeCoords(),
	} {
		for _, c := range coords {
			_, ok := r.Index(c)
			assert.True(t, ok, "%v", c)
		}
	}
}

// TestKindAt classifies the whole raster and recovers the legal-set
// counts: 19 tiles, 72 edges, 54 nodes, the rest null lattice cells.
func TestKindAt(t *testing.T) {
	r := board.NewRaster()
	counts := make(map[grid.Kind]int)
	nulls := 0
	for i := 0; i < r.Size(); i++ {
		c, ok := r.CoordAt(i)
		require.True(t, ok)
		if kind, ok := board.KindAt(c); ok {
			counts[kind]++
		} else {
			nulls++
		}
	}
	assert.Equal(t, 19, counts[grid.KindTile])
	assert.Equal(t, 72, counts[grid.KindEdge])
	assert.Equal(t, 54, counts[grid.KindNode])
	assert.Equal(t, r.Size()-19-72-54, nulls)

	_, ok := board.KindAt(grid.Coord{Col: 8, Row: 3})
	assert.False(t, ok, "cell between tiles is addressable by nothing")
}
