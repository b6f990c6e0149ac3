// Package settler is the coordinate-geometry foundation for a standard
// 19-tile hexagonal settlers board.
//
// 🚀 What is Settler-Zero?
//
//	A small library that addresses all three cell kinds of the board —
//	tiles, edges, corners ("nodes") — in one non-rotatable 2-D integer
//	coordinate space, dense enough for flat-array storage and
//	convolution-style neighbor scans:
//		• Coordinate tables: the fixed 19-tile id↔coordinate bijection
//		• Direction algebra: offset↔direction for each relation kind
//		• Adjacency resolution: neighbors, bounding nodes, nearest tiles
//		• Board enumeration: legal cell sets and the derived coastline
//
// ✨ Why choose it?
//
//   - Explicit errors – invalid ids, coordinates, and directions fail
//     loudly; a missing neighbor (the board edge) is a first-class
//     present/absent result, never a sentinel
//   - Two direction types – tile/edge sides and node corners are rotated
//     30° apart, so mixing them is a compile error, not a runtime bug
//   - Pure functions over constant tables – safe for unsynchronized
//     concurrent use, no state, no I/O
//
// Everything is organized under two subpackages:
//
//	grid/  — coordinate space, direction algebra, adjacency resolution
//	board/ — legal cell enumeration, coastline, dense raster index
//
// Quick ASCII example (tile ids, counter-clockwise from top-left):
//
//	      1  12  11
//	    2  13  18  10
//	  3  14  19  17   9
//	    4  15  16   8
//	      5   6   7
//
// Rules enforcement, players, turn order, and rendering live in the
// consuming game engine; this library only answers "where is it and
// what touches it".
package settler
