package grid

import "fmt"

// Location resolves a (kind, tile, direction-name) triple to a cell
// coordinate, for callers that carry the relation kind as runtime data
// (board serializers, renderers).
//
//   - KindTile: dir must be empty; tiles have no direction.
//   - KindEdge: dir names a tile/edge direction ("NW", "W", "SW", "SE",
//     "E", "NE").
//   - KindNode: dir names a node direction ("N", "NW", "SW", "S", "SE",
//     "NE").
//
// Statically-typed callers should prefer TileCoord, EdgeInDirection, or
// NodeInDirection directly.
func Location(kind Kind, id TileID, dir string) (Coord, error) {
	switch kind {
	case KindTile:
		if dir != "" {
			return Coord{}, fmt.Errorf("grid: tiles have no direction, got %q: %w", dir, ErrInvalidDirection)
		}
		return TileCoord(id)
	case KindEdge:
		d, err := ParseTileDir(dir)
		if err != nil {
			return Coord{}, err
		}
		return EdgeInDirection(id, d)
	case KindNode:
		d, err := ParseNodeDir(dir)
		if err != nil {
			return Coord{}, err
		}
		return NodeInDirection(id, d)
	default:
		return Coord{}, fmt.Errorf("grid: kind %d: %w", int(kind), ErrInvalidKind)
	}
}
