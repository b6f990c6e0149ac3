package grid

// tileCoords maps tile ids 1..19 to their coordinates. Ids run
// counter-clockwise from the top-left tile: 1..12 form the outer ring,
// 13..18 the middle ring, 19 the center. Index 0 is unused.
//
// Board layout (id at coordinate):
//
//	      1:(9,3)   12:(13,3)  11:(17,3)
//	   2:(7,5)   13:(11,5)  18:(15,5)  10:(19,5)
//	3:(5,7)   14:(9,7)   19:(13,7)  17:(17,7)   9:(21,7)
//	   4:(7,9)   15:(11,9)  16:(15,9)   8:(19,9)
//	      5:(9,11)   6:(13,11)   7:(17,11)
var tileCoords = [NumTiles + 1]Coord{
	1: {9, 3}, 12: {13, 3}, 11: {17, 3},
	2: {7, 5}, 13: {11, 5}, 18: {15, 5}, 10: {19, 5},
	3: {5, 7}, 14: {9, 7}, 19: {13, 7}, 17: {17, 7}, 9: {21, 7},
	4: {7, 9}, 15: {11, 9}, 16: {15, 9}, 8: {19, 9},
	5: {9, 11}, 6: {13, 11}, 7: {17, 11},
}

// tileIDByCoord is the exact inverse of tileCoords; the table is
// injective by construction, so the inversion is total over it.
var tileIDByCoord = invertTileTable()

func invertTileTable() map[Coord]TileID {
	m := make(map[Coord]TileID, NumTiles)
	for id := MinTileID; id <= MaxTileID; id++ {
		m[tileCoords[id]] = id
	}
	return m
}

// tileTileOffsets maps a tile/edge direction to the offset
// neighborTileCoord - tileCoord.
var tileTileOffsets = [numTileDirs]Offset{
	TileNW: {-2, -2},
	TileW:  {-4, 0},
	TileSW: {-2, 2},
	TileSE: {2, 2},
	TileE:  {4, 0},
	TileNE: {2, -2},
}

// tileEdgeOffsets maps a tile/edge direction to the offset
// edgeCoord - tileCoord.
var tileEdgeOffsets = [numTileDirs]Offset{
	TileNW: {-1, -1},
	TileW:  {-2, 0},
	TileSW: {-1, 1},
	TileSE: {1, 1},
	TileE:  {2, 0},
	TileNE: {1, -1},
}

// tileNodeOffsets maps a node direction to the offset
// nodeCoord - tileCoord.
var tileNodeOffsets = [numNodeDirs]Offset{
	NodeN:  {0, -1},
	NodeNW: {-2, -1},
	NodeSW: {-2, 1},
	NodeS:  {0, 1},
	NodeSE: {2, 1},
	NodeNE: {2, -1},
}

// TileCoord converts a tile id to its coordinate.
// Ids outside [1,19] return ErrInvalidTileID.
func TileCoord(id TileID) (Coord, error) {
	if !id.Valid() {
		return Coord{}, ErrInvalidTileID
	}
	return tileCoords[id], nil
}

// TileIDAt converts a tile coordinate back to its id, the exact inverse
// of TileCoord. Coordinates not present in the table return
// ErrUnknownTileCoord.
func TileIDAt(c Coord) (TileID, error) {
	id, ok := tileIDByCoord[c]
	if !ok {
		return 0, ErrUnknownTileCoord
	}
	return id, nil
}

// IsTileCoord reports whether c addresses one of the 19 board tiles.
func IsTileCoord(c Coord) bool {
	_, ok := tileIDByCoord[c]
	return ok
}
