// Package board enumerates the legal cells of the 19-tile hex board and
// derives its coastline, by folding the grid adjacency primitives over
// all tiles.
//
// What:
//
//   - The full legal sets of tile, edge, and node coordinates (19, 72,
//     and 54 cells), deduplicated and in deterministic order.
//   - Coastline derivation: the edges of a tile with no tile on their far
//     side, the tiles owning at least one such edge, and the full coast
//     as (tile, direction) segments for renderers.
//   - Raster: a dense row-major index over the bounding box of the
//     shared coordinate space, for array-backed storage and
//     convolution-style scans.
//
// Why:
//
//   - Game-state logic needs the legal placement sets once, up front;
//     rendering needs the coastline in direction-relative form.
//   - The board is fixed, so everything here is computed once at package
//     initialization and served as fresh copies.
//
// Complexity:
//
//   - Initialization folds 6 offsets over 19 tiles: O(1) for a fixed
//     board. Accessors are O(n) in the size of the returned copy;
//     membership tests are O(1).
//   - All package state is immutable after initialization; every
//     function is safe for unsynchronized concurrent use.
//
// Errors: the only failure mode is an invalid tile id, surfaced as
// grid.ErrInvalidTileID. Enumeration itself cannot fail.
package board
