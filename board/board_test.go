package board_test

import (
	"testing"

	"github.com/jerry123z/Settler-Zero/board"
	"github.com/jerry123z/Settler-Zero/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLegalSetSizes asserts the closed-form counts for a 19-tile hex
// board: 19 tiles, 72 edges, 54 nodes.
func TestLegalSetSizes(t *testing.T) {
	assert.Len(t, board.TileIDs(), 19)
	assert.Len(t, board.TileCoords(), 19)
	assert.Len(t, board.EdgeCoords(), 72)
	assert.Len(t, board.NodeCoords(), 54)
}

// TestSetMembership cross-checks the Is* predicates against the
// enumerations and against cells that are nothing at all.
func TestSetMembership(t *testing.T) {
	for _, c := range board.TileCoords() {
		assert.True(t, board.IsTileCoord(c), "%v", c)
	}
	for _, c := range board.EdgeCoords() {
		assert.True(t, board.IsEdgeCoord(c), "%v", c)
		assert.False(t, board.IsTileCoord(c), "%v is an edge, not a tile", c)
	}
	for _, c := range board.NodeCoords() {
		assert.True(t, board.IsNodeCoord(c), "%v", c)
		assert.False(t, board.IsEdgeCoord(c), "%v is a node, not an edge", c)
	}

	for _, c := range []grid.Coord{{}, {Col: 8, Row: 3}, {Col: -1, Row: -1}} {
		assert.False(t, board.IsTileCoord(c))
		assert.False(t, board.IsEdgeCoord(c))
		assert.False(t, board.IsNodeCoord(c))
	}
}

// TestEdgeNodeBinding: every legal edge is bounded by exactly two
// distinct nodes, and both are legal nodes.
func TestEdgeNodeBinding(t *testing.T) {
	for _, edge := range board.EdgeCoords() {
		a, b := grid.NodesTouchingEdge(edge)
		assert.NotEqual(t, a, b, "edge %v", edge)
		assert.True(t, board.IsNodeCoord(a), "edge %v node %v", edge, a)
		assert.True(t, board.IsNodeCoord(b), "edge %v node %v", edge, b)
	}
}

// TestCoastalTileIDs: exactly the 12 outer-ring tiles touch the coast.
func TestCoastalTileIDs(t *testing.T) {
	want := []grid.TileID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	assert.Equal(t, want, board.CoastalTileIDs())
}

// TestCoastalEdges verifies both directions of the coastal property for
// every tile: each coastal edge faces no tile, each non-coastal edge
// faces a legal one. Corner tiles have three coastal edges, side tiles
// two, interior tiles none.
func TestCoastalEdges(t *testing.T) {
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		coastal, err := board.CoastalEdges(id)
		require.NoError(t, err)

		coastalSet := make(map[grid.Coord]struct{}, len(coastal))
		for _, e := range coastal {
			coastalSet[e] = struct{}{}
		}

		tileCoord, err := grid.TileCoord(id)
		require.NoError(t, err)
		edges, err := grid.EdgesTouchingTile(id)
		require.NoError(t, err)

		for _, e := range edges {
			d, err := grid.EdgeDirOfOffset(e.Diff(tileCoord))
			require.NoError(t, err)
			_, hasNeighbor, err := grid.Neighbor(id, d)
			require.NoError(t, err)

			if _, isCoastal := coastalSet[e]; isCoastal {
				assert.False(t, hasNeighbor, "coastal edge %v of tile %d must face open water", e, id)
			} else {
				assert.True(t, hasNeighbor, "interior edge %v of tile %d must face a tile", e, id)
			}
		}

		switch {
		case id >= 13: // middle ring and center
			assert.Empty(t, coastal, "tile %d is interior", id)
		default:
			assert.Contains(t, []int{2, 3}, len(coastal), "tile %d", id)
		}
	}
}

// TestCoastalEdges_InvalidID surfaces the shared contract violation.
func TestCoastalEdges_InvalidID(t *testing.T) {
	_, err := board.CoastalEdges(0)
	assert.ErrorIs(t, err, grid.ErrInvalidTileID)
	_, err = board.CoastalEdges(20)
	assert.ErrorIs(t, err, grid.ErrInvalidTileID)
}

// TestCoast checks the direction-relative coastline: 30 segments in
// total (6 corner tiles × 3 + 6 side tiles × 2), each resolving to a
// coastal edge of its tile.
func TestCoast(t *testing.T) {
	segs := board.Coast()
	assert.Len(t, segs, 30)

	for _, seg := range segs {
		_, ok, err := grid.Neighbor(seg.Tile, seg.Dir)
		require.NoError(t, err)
		assert.False(t, ok, "segment %+v must face open water", seg)

		edge, err := grid.EdgeInDirection(seg.Tile, seg.Dir)
		require.NoError(t, err)
		assert.True(t, board.IsEdgeCoord(edge), "segment %+v resolves to edge %v", seg, edge)
	}
}

// TestNearestTile_WholeBoard: the no-candidates wrappers scan all 19
// tiles, so the shared edge (11,3) and the three-way node (11,4) both
// resolve to tile 1 under the lowest-id tie-break.
func TestNearestTile_WholeBoard(t *testing.T) {
	id, ok := board.NearestTileToEdge(grid.Coord{Col: 11, Row: 3})
	require.True(t, ok)
	assert.Equal(t, grid.TileID(1), id)

	id, ok = board.NearestTileToNode(grid.Coord{Col: 11, Row: 4})
	require.True(t, ok)
	assert.Equal(t, grid.TileID(1), id)

	_, ok = board.NearestTileToEdge(grid.Coord{Col: 99, Row: 99})
	assert.False(t, ok)
}

// TestEnumeration_FreshCopies: mutating a returned slice must not leak
// into later calls.
func TestEnumeration_FreshCopies(t *testing.T) {
	edges := board.EdgeCoords()
	edges[0] = grid.Coord{Col: -99, Row: -99}
	assert.NotEqual(t, edges[0], board.EdgeCoords()[0])

	ids := board.CoastalTileIDs()
	ids[0] = 99
	assert.Equal(t, grid.TileID(1), board.CoastalTileIDs()[0])
}
