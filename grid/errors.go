package grid

import "errors"

// Sentinel errors for grid operations. Invalid input is always surfaced
// to the caller; nothing is coerced to an in-band marker value.
var (
	// ErrInvalidTileID indicates a tile id outside the legal range [1,19].
	ErrInvalidTileID = errors.New("grid: tile id outside the legal range [1,19]")

	// ErrUnknownTileCoord indicates a coordinate that does not address any
	// of the 19 board tiles.
	ErrUnknownTileCoord = errors.New("grid: coordinate does not address a board tile")

	// ErrUnknownOffset indicates an offset that is not one of the six
	// legal vectors for the requested relation kind.
	ErrUnknownOffset = errors.New("grid: offset is not a legal vector for this relation kind")

	// ErrInvalidDirection indicates a direction value or name that is not
	// valid for the requested relation kind.
	ErrInvalidDirection = errors.New("grid: direction is not valid for this relation kind")

	// ErrNotAdjacent indicates two tiles passed to DirectionBetween that
	// do not share a side.
	ErrNotAdjacent = errors.New("grid: tiles are not adjacent")

	// ErrInvalidKind indicates an unknown cell kind tag.
	ErrInvalidKind = errors.New("grid: unknown cell kind")
)
