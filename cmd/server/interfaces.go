package main

import (
	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// LabyrinthEngine builds labyrinths and remembers the latest one
type LabyrinthEngine interface {
	Build(req protocol.RequestBuild) (protocol.Snapshot, error)
	Latest() (protocol.Snapshot, bool)
}
