package maze

import "errors"

// error types
var (
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrWallBlocked       = errors.New("there is a wall there")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrForeignCell       = errors.New("cell does not belong to this grid")
)
