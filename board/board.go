package board

import (
	"sort"

	"github.com/jerry123z/Settler-Zero/grid"
)

// CoastSegment is one stretch of coastline: the tile that owns it and
// the side it faces. Direction-relative form is what renderers consume;
// the absolute edge coordinate is grid.EdgeInDirection(Tile, Dir).
type CoastSegment struct {
	Tile grid.TileID
	Dir  grid.TileDir
}

// The board never changes, so the legal sets and the coastline are
// folded once at package initialization.
var (
	edgeSet  = buildCellSet(grid.EdgesTouchingTile)
	nodeSet  = buildCellSet(grid.NodesTouchingTile)
	coast    = buildCoast()
	coastIDs = buildCoastalTileIDs()
)

func buildCellSet(touching func(grid.TileID) ([]grid.Coord, error)) map[grid.Coord]struct{} {
	set := make(map[grid.Coord]struct{})
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		cells, err := touching(id)
		if err != nil {
			panic(err) // unreachable: every id in [1,19] is legal
		}
		for _, c := range cells {
			set[c] = struct{}{}
		}
	}
	return set
}

func buildCoast() []CoastSegment {
	var segs []CoastSegment
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		for _, d := range grid.TileDirs() {
			if _, ok, _ := grid.Neighbor(id, d); !ok {
				segs = append(segs, CoastSegment{Tile: id, Dir: d})
			}
		}
	}
	return segs
}

func buildCoastalTileIDs() []grid.TileID {
	var ids []grid.TileID
	for _, seg := range coast {
		if n := len(ids); n == 0 || ids[n-1] != seg.Tile {
			ids = append(ids, seg.Tile)
		}
	}
	return ids
}

// TileIDs returns the 19 legal tile ids in ascending order.
// The slice is freshly allocated on every call.
func TileIDs() []grid.TileID {
	ids := make([]grid.TileID, 0, grid.NumTiles)
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// TileCoords returns the 19 legal tile coordinates in row-major order.
func TileCoords() []grid.Coord {
	coords := make([]grid.Coord, 0, grid.NumTiles)
	for id := grid.MinTileID; id <= grid.MaxTileID; id++ {
		c, _ := grid.TileCoord(id)
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}

// EdgeCoords returns the 72 legal edge coordinates in row-major order:
// the deduplicated union of every tile's six edges.
func EdgeCoords() []grid.Coord {
	return sortedCopy(edgeSet)
}

// NodeCoords returns the 54 legal node coordinates in row-major order:
// the deduplicated union of every tile's six nodes.
func NodeCoords() []grid.Coord {
	return sortedCopy(nodeSet)
}

// IsTileCoord reports whether c addresses a board tile.
func IsTileCoord(c grid.Coord) bool {
	return grid.IsTileCoord(c)
}

// IsEdgeCoord reports whether c addresses a board edge.
func IsEdgeCoord(c grid.Coord) bool {
	_, ok := edgeSet[c]
	return ok
}

// IsNodeCoord reports whether c addresses a board node.
func IsNodeCoord(c grid.Coord) bool {
	_, ok := nodeSet[c]
	return ok
}

// CoastalEdges returns the tile's edges that have no tile on their far
// side, in fixed direction order. Interior tiles return an empty slice.
func CoastalEdges(id grid.TileID) ([]grid.Coord, error) {
	if !id.Valid() {
		return nil, grid.ErrInvalidTileID
	}
	var edges []grid.Coord
	for _, seg := range coast {
		if seg.Tile == id {
			c, _ := grid.EdgeInDirection(seg.Tile, seg.Dir)
			edges = append(edges, c)
		}
	}
	return edges, nil
}

// CoastalTileIDs returns the ids of every tile with at least one coastal
// edge, ascending. On the standard board these are the 12 outer-ring
// tiles.
func CoastalTileIDs() []grid.TileID {
	ids := make([]grid.TileID, len(coastIDs))
	copy(ids, coastIDs)
	return ids
}

// Coast returns every coastal edge as a (tile, direction) segment,
// ordered by tile id and then by fixed direction order. On the standard
// board the coast has 30 segments.
func Coast() []CoastSegment {
	segs := make([]CoastSegment, len(coast))
	copy(segs, coast)
	return segs
}

// NearestTileToEdge returns the lowest-id legal tile touching the given
// edge, considering all 19 tiles. The ok result is false when the
// coordinate touches no tile at all.
func NearestTileToEdge(edge grid.Coord) (grid.TileID, bool) {
	id, ok, _ := grid.NearestTileToEdge(edge, TileIDs())
	return id, ok
}

// NearestTileToNode is the node counterpart of NearestTileToEdge.
func NearestTileToNode(node grid.Coord) (grid.TileID, bool) {
	id, ok, _ := grid.NearestTileToNode(node, TileIDs())
	return id, ok
}

func sortedCopy(set map[grid.Coord]struct{}) []grid.Coord {
	coords := make([]grid.Coord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}

func sortCoords(coords []grid.Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
}
