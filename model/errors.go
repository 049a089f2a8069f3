package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is constructed with a non-positive width or height
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfRange is returned for cell access outside the grid
	ErrOutOfRange = errors.New("cell coordinates out of range")
	// ErrUnknownPattern is returned when a pattern name does not match any built-in pattern
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrRunning is returned by Session mutators while the simulation is running
	ErrRunning = errors.New("simulation is running")
)
