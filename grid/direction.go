package grid

import "fmt"

// Direction algebra: each relation kind owns a fixed bijection between
// its six directions and its six offset vectors. No normalization or
// rotation is ever applied; the coordinate space is non-rotatable, so a
// direction's meaning is always board-relative.

// TileOffset returns the tile–tile offset for the given direction.
func TileOffset(d TileDir) (Offset, error) {
	if !d.Valid() {
		return Offset{}, ErrInvalidDirection
	}
	return tileTileOffsets[d], nil
}

// EdgeOffset returns the tile–edge offset for the given direction.
func EdgeOffset(d TileDir) (Offset, error) {
	if !d.Valid() {
		return Offset{}, ErrInvalidDirection
	}
	return tileEdgeOffsets[d], nil
}

// NodeOffset returns the tile–node offset for the given direction.
func NodeOffset(d NodeDir) (Offset, error) {
	if !d.Valid() {
		return Offset{}, ErrInvalidDirection
	}
	return tileNodeOffsets[d], nil
}

// TileDirOfOffset resolves a tile–tile offset to its direction.
// Offsets outside the six-vector table return ErrUnknownOffset.
func TileDirOfOffset(o Offset) (TileDir, error) {
	for d, off := range tileTileOffsets {
		if off == o {
			return TileDir(d), nil
		}
	}
	return 0, fmt.Errorf("grid: tile-tile offset (%d,%d): %w", o.DCol, o.DRow, ErrUnknownOffset)
}

// EdgeDirOfOffset resolves a tile–edge offset to its direction.
// Offsets outside the six-vector table return ErrUnknownOffset.
func EdgeDirOfOffset(o Offset) (TileDir, error) {
	for d, off := range tileEdgeOffsets {
		if off == o {
			return TileDir(d), nil
		}
	}
	return 0, fmt.Errorf("grid: tile-edge offset (%d,%d): %w", o.DCol, o.DRow, ErrUnknownOffset)
}

// NodeDirOfOffset resolves a tile–node offset to its direction.
// Offsets outside the six-vector table return ErrUnknownOffset.
func NodeDirOfOffset(o Offset) (NodeDir, error) {
	for d, off := range tileNodeOffsets {
		if off == o {
			return NodeDir(d), nil
		}
	}
	return 0, fmt.Errorf("grid: tile-node offset (%d,%d): %w", o.DCol, o.DRow, ErrUnknownOffset)
}

// ParseTileDir resolves a compass name ("NW", "W", "SW", "SE", "E",
// "NE") to a tile/edge direction.
func ParseTileDir(s string) (TileDir, error) {
	for d, name := range tileDirNames {
		if name == s {
			return TileDir(d), nil
		}
	}
	return 0, fmt.Errorf("grid: parse tile direction %q: %w", s, ErrInvalidDirection)
}

// ParseNodeDir resolves a compass name ("N", "NW", "SW", "S", "SE",
// "NE") to a node direction.
func ParseNodeDir(s string) (NodeDir, error) {
	for d, name := range nodeDirNames {
		if name == s {
			return NodeDir(d), nil
		}
	}
	return 0, fmt.Errorf("grid: parse node direction %q: %w", s, ErrInvalidDirection)
}
