package board

import "github.com/jerry123z/Settler-Zero/grid"

// Raster is a dense row-major index over the bounding box of all legal
// cell coordinates. It lets consumers hold the whole board in a flat
// array and run convolution-style scans with the grid offset tables,
// which is the reason the coordinate space interleaves tiles, edges, and
// nodes in one lattice.
//
// The zero Raster is not meaningful; use NewRaster.
type Raster struct {
	MinCol, MinRow int // coordinate of index 0
	Width, Height  int // bounding box dimensions, in lattice cells
}

// rasterBounds is fixed by the board layout.
var rasterBounds = computeRasterBounds()

func computeRasterBounds() Raster {
	first := true
	var minCol, maxCol, minRow, maxRow int
	scan := func(coords []grid.Coord) {
		for _, c := range coords {
			if first {
				minCol, maxCol, minRow, maxRow = c.Col, c.Col, c.Row, c.Row
				first = false
				continue
			}
			if c.Col < minCol {
				minCol = c.Col
			}
			if c.Col > maxCol {
				maxCol = c.Col
			}
			if c.Row < minRow {
				minRow = c.Row
			}
			if c.Row > maxRow {
				maxRow = c.Row
			}
		}
	}
	scan(TileCoords())
	scan(EdgeCoords())
	scan(NodeCoords())
	return Raster{
		MinCol: minCol,
		MinRow: minRow,
		Width:  maxCol - minCol + 1,
		Height: maxRow - minRow + 1,
	}
}

// NewRaster returns the raster covering the standard board: every legal
// tile, edge, and node coordinate lies inside it.
func NewRaster() Raster {
	return rasterBounds
}

// Size returns the number of lattice cells, Width×Height.
func (r Raster) Size() int {
	return r.Width * r.Height
}

// Contains reports whether c lies inside the raster's bounding box.
// Interior cells are not necessarily legal board cells; the lattice has
// null spaces between the addressable ones.
func (r Raster) Contains(c grid.Coord) bool {
	return c.Col >= r.MinCol && c.Col < r.MinCol+r.Width &&
		c.Row >= r.MinRow && c.Row < r.MinRow+r.Height
}

// Index converts a coordinate to its row-major array index.
// The ok result is false for coordinates outside the bounding box.
func (r Raster) Index(c grid.Coord) (int, bool) {
	if !r.Contains(c) {
		return 0, false
	}
	return (c.Row-r.MinRow)*r.Width + (c.Col - r.MinCol), true
}

// CoordAt converts a row-major array index back to its coordinate, the
// inverse of Index. The ok result is false for indices outside [0,Size).
func (r Raster) CoordAt(i int) (grid.Coord, bool) {
	if i < 0 || i >= r.Size() {
		return grid.Coord{}, false
	}
	return grid.Coord{
		Col: r.MinCol + i%r.Width,
		Row: r.MinRow + i/r.Width,
	}, true
}

// KindAt classifies a coordinate as a tile, edge, or node cell.
// The ok result is false for null lattice cells and for coordinates
// outside the board.
func KindAt(c grid.Coord) (grid.Kind, bool) {
	switch {
	case IsTileCoord(c):
		return grid.KindTile, true
	case IsEdgeCoord(c):
		return grid.KindEdge, true
	case IsNodeCoord(c):
		return grid.KindNode, true
	default:
		return 0, false
	}
}
