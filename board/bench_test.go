package board_test

import (
	"testing"

	"github.com/jerry123z/Settler-Zero/board"
)

// BenchmarkEdgeCoords measures the cost of handing out a fresh copy of
// the 72-edge legal set, the common setup call in game initialization.
func BenchmarkEdgeCoords(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = board.EdgeCoords()
	}
}

// BenchmarkKindAt measures a full-raster classification sweep, the
// convolution-style access pattern the dense layout exists for.
func BenchmarkKindAt(b *testing.B) {
	r := board.NewRaster()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < r.Size(); j++ {
			c, _ := r.CoordAt(j)
			_, _ = board.KindAt(c)
		}
	}
}
