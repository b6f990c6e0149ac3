package grid_test

import (
	"testing"

	"github.com/jerry123z/Settler-Zero/grid"
)

// BenchmarkNeighbor measures a full-board neighbor sweep (19 tiles × 6
// directions), the hot loop of board enumeration and coastline checks.
// Complexity: O(1) per lookup over fixed tables.
func BenchmarkNeighbor(b *testing.B) {
	dirs := grid.TileDirs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
			for _, d := range dirs {
				_, _, _ = grid.Neighbor(id, d)
			}
		}
	}
}

// BenchmarkNearestTileToNode measures the candidate scan with the full
// 19-tile legal set, the worst case for placement lookups.
func BenchmarkNearestTileToNode(b *testing.B) {
	candidates := make([]grid.TileID, 0, grid.NumTiles)
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		candidates = append(candidates, id)
	}
	node := grid.Coord{Col: 11, Row: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = grid.NearestTileToNode(node, candidates)
	}
}
