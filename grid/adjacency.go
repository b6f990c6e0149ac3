package grid

// Adjacency resolution: neighbor lookups built from the offset tables.
// Every function here is a pure fold over at most six fixed vectors.

// EdgesTouchingTile returns the six edge coordinates around the given
// tile, in fixed direction order (NW, W, SW, SE, E, NE). A tile always
// has six edges; "coastal" is a property of missing neighbor tiles, not
// of missing edges.
func EdgesTouchingTile(id TileID) ([]Coord, error) {
	c, err := TileCoord(id)
	if err != nil {
		return nil, err
	}
	edges := make([]Coord, 0, numTileDirs)
	for _, off := range tileEdgeOffsets {
		edges = append(edges, c.Add(off))
	}
	return edges, nil
}

// NodesTouchingTile returns the six node coordinates around the given
// tile, in fixed direction order (N, NW, SW, S, SE, NE).
func NodesTouchingTile(id TileID) ([]Coord, error) {
	c, err := TileCoord(id)
	if err != nil {
		return nil, err
	}
	nodes := make([]Coord, 0, numNodeDirs)
	for _, off := range tileNodeOffsets {
		nodes = append(nodes, c.Add(off))
	}
	return nodes, nil
}

// NodesTouchingEdge returns the two node coordinates bounding the given
// edge. Orientation follows the column parity of the doubled coordinate
// system: even-column edges lie flat and their nodes sit left and right
// along the column axis; odd-column edges are slanted and their nodes
// sit above and below along the row axis.
//
// This is a pure geometric fact of the address space, defined for any
// coordinate, legal or not.
func NodesTouchingEdge(edge Coord) (Coord, Coord) {
	if edge.Col%2 == 0 {
		return Coord{edge.Col + 1, edge.Row}, Coord{edge.Col - 1, edge.Row}
	}
	return Coord{edge.Col, edge.Row - 1}, Coord{edge.Col, edge.Row + 1}
}

// Neighbor returns the tile on the far side of the given direction.
// The ok result is false when no tile lies there, which means the board
// edge; absence is an expected outcome, not an error. Errors are
// reserved for invalid input (bad id or direction).
func Neighbor(from TileID, d TileDir) (TileID, bool, error) {
	c, err := TileCoord(from)
	if err != nil {
		return 0, false, err
	}
	off, err := TileOffset(d)
	if err != nil {
		return 0, false, err
	}
	id, err := TileIDAt(c.Add(off))
	if err != nil {
		return 0, false, nil // off the board: absent, not an error
	}
	return id, true, nil
}

// DirectionBetween returns the direction leading from one tile to an
// adjacent one. Non-adjacent tiles are a caller contract violation and
// return ErrNotAdjacent, never a marker value.
func DirectionBetween(from, to TileID) (TileDir, error) {
	cf, err := TileCoord(from)
	if err != nil {
		return 0, err
	}
	ct, err := TileCoord(to)
	if err != nil {
		return 0, err
	}
	d, err := TileDirOfOffset(ct.Diff(cf))
	if err != nil {
		return 0, ErrNotAdjacent
	}
	return d, nil
}

// EdgeInDirection returns the coordinate of the tile's edge on the
// given side.
func EdgeInDirection(id TileID, d TileDir) (Coord, error) {
	c, err := TileCoord(id)
	if err != nil {
		return Coord{}, err
	}
	off, err := EdgeOffset(d)
	if err != nil {
		return Coord{}, err
	}
	return c.Add(off), nil
}

// NodeInDirection returns the coordinate of the tile's corner in the
// given direction.
func NodeInDirection(id TileID, d NodeDir) (Coord, error) {
	c, err := TileCoord(id)
	if err != nil {
		return Coord{}, err
	}
	off, err := NodeOffset(d)
	if err != nil {
		return Coord{}, err
	}
	return c.Add(off), nil
}

// NearestTileToEdge returns the candidate tile touching the given edge.
// Up to two tiles can touch an edge; the lowest matching id wins, so the
// result does not depend on the order of the candidates slice. The ok
// result is false when no candidate touches the edge. A candidate id
// outside [1,19] returns ErrInvalidTileID.
func NearestTileToEdge(edge Coord, candidates []TileID) (TileID, bool, error) {
	return nearestTile(edge, candidates, tileEdgeOffsets[:])
}

// NearestTileToNode returns the candidate tile touching the given node,
// with the same lowest-id tie-break as NearestTileToEdge. Up to three
// tiles can touch a node.
func NearestTileToNode(node Coord, candidates []TileID) (TileID, bool, error) {
	return nearestTile(node, candidates, tileNodeOffsets[:])
}

func nearestTile(cell Coord, candidates []TileID, offsets []Offset) (TileID, bool, error) {
	var best TileID
	found := false
	for _, id := range candidates {
		c, err := TileCoord(id)
		if err != nil {
			return 0, false, err
		}
		diff := cell.Diff(c)
		for _, off := range offsets {
			if diff == off {
				if !found || id < best {
					best = id
					found = true
				}
				break
			}
		}
	}
	return best, found, nil
}
