package labyrinth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions  = errors.New("labyrinth must have dimensions that are natural numbers")
	ErrInvalidRoomCount   = errors.New("number of rooms to spawn cannot be negative")
	ErrRoomDoesNotFit     = errors.New("room footprint does not fit the labyrinth")
	ErrNoDoors            = errors.New("cannot connect a room without doors")
	ErrPlacementExhausted = errors.New("room placement attempts exhausted")
	ErrDisconnected       = errors.New("labyrinth is not connected")

	// errNoReachableDoor means none of a freshly placed room's doors opens onto
	// a cell with a known distance. The placement is undone and retried.
	errNoReachableDoor = errors.New("no reachable door")
)

// PlacementError reports a room that could not be placed before the attempt
// cap ran out.
type PlacementError struct {
	Room     int
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: room %d found no space after %d attempts", ErrPlacementExhausted, e.Room, e.Attempts)
}

func (e *PlacementError) Unwrap() error { return ErrPlacementExhausted }
