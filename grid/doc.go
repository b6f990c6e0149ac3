// Package grid implements the coordinate algebra for the standard
// 19-tile hexagonal settlers board.
//
// What:
//
//   - A single non-rotatable 2-D integer coordinate space addresses all
//     three cell kinds (tiles, edges, nodes), dense enough for array-based
//     storage and convolution-style neighbor scans.
//   - Fixed bidirectional tables map the 19 tile identifiers to their
//     coordinates, and six-vector offset tables map coordinate differences
//     to named directions for each relation kind (tile–tile, tile–edge,
//     tile–node).
//   - Adjacency resolution: the edges and nodes touching a tile, the two
//     nodes bounding an edge, the neighboring tile in a direction, and the
//     direction between two adjacent tiles.
//
// Why:
//
//   - Higher-level game logic (placement, resource distribution, robber
//     movement) needs one authoritative, orientation-free answer to
//     "what is next to what" without carrying any board state itself.
//   - Tile–edge directions and tile–node directions are rotated 30° from
//     one another, so they are distinct types (TileDir vs NodeDir); the
//     compiler rejects a node direction where an edge direction belongs.
//
// Complexity:
//
//   - Every operation is a constant number of lookups over fixed tables
//     (19 tiles, 6 offsets): O(1) time, O(1) memory.
//   - All tables are immutable package constants; every function is pure
//     and safe for unsynchronized concurrent use.
//
// Errors (sentinel):
//
//   - ErrInvalidTileID     if a tile id lies outside [1,19].
//   - ErrUnknownTileCoord  if a coordinate does not address a board tile.
//   - ErrUnknownOffset     if an offset is not one of the six legal
//     vectors for the relation kind.
//   - ErrInvalidDirection  if a direction value or name is not valid for
//     the relation kind.
//   - ErrNotAdjacent       if two tiles passed to DirectionBetween do not
//     touch.
//   - ErrInvalidKind       if a cell kind tag is unknown.
//
// A missing neighbor is NOT an error: Neighbor reports board edges
// through its ok result, and callers must treat the absent case as a
// first-class outcome (it is how the coastline is detected).
package grid
