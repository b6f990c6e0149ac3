// Package grid defines the value types of the hex board coordinate
// space: coordinates, offsets, tile identifiers, the two direction
// vocabularies, and the cell-kind dispatch tag.
package grid

import "fmt"

// Coord is a position in the shared 2-D integer address space used by
// tiles, edges, and nodes alike. Coordinates are immutable value types;
// equality and map-key hashing are structural.
type Coord struct {
	Col int // horizontal component; parity distinguishes edge orientations
	Row int // vertical component
}

// Add returns the coordinate displaced by the given offset.
func (c Coord) Add(o Offset) Coord {
	return Coord{Col: c.Col + o.DCol, Row: c.Row + o.DRow}
}

// Diff returns the offset leading from the given coordinate to c,
// i.e. c - from.
func (c Coord) Diff(from Coord) Offset {
	return Offset{DCol: c.Col - from.Col, DRow: c.Row - from.Row}
}

// String renders the coordinate as "(col,row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Offset is a coordinate difference between two related cells.
// Only eighteen offsets are meaningful (six per relation kind); the
// direction algebra rejects everything else.
type Offset struct {
	DCol int
	DRow int
}

// Neg returns the offset pointing the opposite way.
func (o Offset) Neg() Offset {
	return Offset{DCol: -o.DCol, DRow: -o.DRow}
}

// TileID identifies one of the 19 board tiles. Ids run 1..19,
// counter-clockwise from the top-left tile, outer ring first.
type TileID int

// Tile id bounds; the board layout is fixed for the process lifetime.
const (
	MinTileID TileID = 1
	MaxTileID TileID = 19

	// NumTiles is the number of tiles on the board.
	NumTiles = 19
)

// Valid reports whether id lies in the legal range [1,19].
func (id TileID) Valid() bool {
	return id >= MinTileID && id <= MaxTileID
}

// TileDir names a direction used by the tile–tile and tile–edge
// relations: the six hex sides.
type TileDir int

const (
	TileNW TileDir = iota // north-west side
	TileW                 // west side
	TileSW                // south-west side
	TileSE                // south-east side
	TileE                 // east side
	TileNE                // north-east side

	numTileDirs = 6
)

// tileDirNames is indexed by TileDir.
var tileDirNames = [numTileDirs]string{
	TileNW: "NW",
	TileW:  "W",
	TileSW: "SW",
	TileSE: "SE",
	TileE:  "E",
	TileNE: "NE",
}

// Valid reports whether d is one of the six tile/edge directions.
func (d TileDir) Valid() bool {
	return d >= TileNW && d < numTileDirs
}

// String returns the compass name of the direction ("NW", "W", ...).
func (d TileDir) String() string {
	if !d.Valid() {
		return fmt.Sprintf("TileDir(%d)", int(d))
	}
	return tileDirNames[d]
}

// Opposite returns the direction pointing the other way
// (NW↔SE, W↔E, SW↔NE). Opposite is its own inverse.
func (d TileDir) Opposite() TileDir {
	switch d {
	case TileNW:
		return TileSE
	case TileW:
		return TileE
	case TileSW:
		return TileNE
	case TileSE:
		return TileNW
	case TileE:
		return TileW
	case TileNE:
		return TileSW
	default:
		return d
	}
}

// NodeDir names a direction used by the tile–node relation: the six hex
// corners, rotated 30° from the sides. It is a distinct type from
// TileDir on purpose; the two vocabularies are not interchangeable.
type NodeDir int

const (
	NodeN  NodeDir = iota // north corner
	NodeNW                // north-west corner
	NodeSW                // south-west corner
	NodeS                 // south corner
	NodeSE                // south-east corner
	NodeNE                // north-east corner

	numNodeDirs = 6
)

// nodeDirNames is indexed by NodeDir.
var nodeDirNames = [numNodeDirs]string{
	NodeN:  "N",
	NodeNW: "NW",
	NodeSW: "SW",
	NodeS:  "S",
	NodeSE: "SE",
	NodeNE: "NE",
}

// Valid reports whether d is one of the six node directions.
func (d NodeDir) Valid() bool {
	return d >= NodeN && d < numNodeDirs
}

// String returns the compass name of the direction ("N", "NW", ...).
func (d NodeDir) String() string {
	if !d.Valid() {
		return fmt.Sprintf("NodeDir(%d)", int(d))
	}
	return nodeDirNames[d]
}

// Opposite returns the diametrically opposed corner
// (N↔S, NW↔SE, SW↔NE).
func (d NodeDir) Opposite() NodeDir {
	switch d {
	case NodeN:
		return NodeS
	case NodeNW:
		return NodeSE
	case NodeSW:
		return NodeNE
	case NodeS:
		return NodeN
	case NodeSE:
		return NodeNW
	case NodeNE:
		return NodeSW
	default:
		return d
	}
}

// TileDirs returns the six tile/edge directions in their fixed table
// order (NW, W, SW, SE, E, NE). The slice is freshly allocated.
func TileDirs() []TileDir {
	return []TileDir{TileNW, TileW, TileSW, TileSE, TileE, TileNE}
}

// NodeDirs returns the six node directions in their fixed table order
// (N, NW, SW, S, SE, NE). The slice is freshly allocated.
func NodeDirs() []NodeDir {
	return []NodeDir{NodeN, NodeNW, NodeSW, NodeS, NodeSE, NodeNE}
}

// Kind tags which of the three cell vocabularies a coordinate or
// direction lookup refers to. It is used for dispatch only and never
// stored alongside a coordinate.
type Kind int

const (
	// KindEdge addresses a hex side (road site).
	KindEdge Kind = iota
	// KindNode addresses a hex corner (settlement site).
	KindNode
	// KindTile addresses a hex cell itself.
	KindTile
)

// Valid reports whether k is one of the three cell kinds.
func (k Kind) Valid() bool {
	return k >= KindEdge && k <= KindTile
}

// String returns "edge", "node", or "tile".
func (k Kind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindNode:
		return "node"
	case KindTile:
		return "tile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
