package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
	"github.com/Ko-stant/labyrinth-engine/internal/labyrinth"
	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
)

// Engine implements LabyrinthEngine. Builds are serialized.
type Engine struct {
	mu          sync.Mutex
	defaults    BuildDefaults
	room        geometry.Room
	verbose     bool
	broadcaster Broadcaster
	logger      Logger
	metrics     *BuildMetrics

	latest    protocol.Snapshot
	hasLatest bool
}

// NewEngine creates a labyrinth engine with dependencies
func NewEngine(defaults BuildDefaults, room geometry.Room, broadcaster Broadcaster, logger Logger, metrics *BuildMetrics) *Engine {
	if metrics == nil {
		metrics = NewBuildMetrics()
	}
	return &Engine{
		defaults:    defaults,
		room:        room,
		broadcaster: broadcaster,
		logger:      logger,
		metrics:     metrics,
	}
}

// SetVerbose makes every build log its finished field.
func (e *Engine) SetVerbose(v bool) { e.verbose = v }

func (e *Engine) Latest() (protocol.Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest, e.hasLatest
}

// Config merges req over the engine defaults.
func (e *Engine) Config(req protocol.RequestBuild) labyrinth.Config {
	cfg := labyrinth.Config{
		Width:                e.defaults.Width,
		Height:               e.defaults.Height,
		Rooms:                e.defaults.Rooms,
		CellUnit:             e.defaults.CellUnit,
		Room:                 e.room,
		Seed:                 e.defaults.Seed,
		MaxPlacementAttempts: e.defaults.MaxPlacementAttempts,
		Verbose:              e.verbose,
		Logger:               e.logger,
	}
	if req.Width != 0 {
		cfg.Width = req.Width
	}
	if req.Height != 0 {
		cfg.Height = req.Height
	}
	if req.Rooms != nil {
		cfg.Rooms = *req.Rooms
	}
	if req.CellUnit != 0 {
		cfg.CellUnit = req.CellUnit
	}
	if req.Seed != nil {
		cfg.Seed = req.Seed
	}
	return cfg
}

// Build runs one labyrinth build and broadcasts the outcome. A successful
// build replaces the latest snapshot; a failed one leaves it untouched.
func (e *Engine) Build(req protocol.RequestBuild) (protocol.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg := e.Config(req)
	start := time.Now()
	snapshot, err := e.build(cfg)
	e.metrics.TrackBuild(time.Since(start), err == nil)
	e.metrics.UpdateSystemMetrics()

	if err != nil {
		apiErr := toAPIError(err)
		e.logger.Printf("build failed: %v", err)
		e.broadcaster.BroadcastEvent(protocol.PatchBuildFailed, protocol.BuildFailed{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		})
		return snapshot, err
	}

	e.latest = snapshot
	e.hasLatest = true
	e.logger.Printf("built labyrinth seed=%d %dx%d rooms=%d hall=%d in %v",
		snapshot.Seed, snapshot.Width, snapshot.Height, len(snapshot.Rooms), snapshot.HallCells, time.Since(start))

	e.broadcaster.BroadcastEvent(protocol.PatchLabyrinthBuilt, protocol.LabyrinthBuilt{Snapshot: snapshot})
	for _, room := range snapshot.Rooms {
		e.broadcaster.BroadcastEvent(protocol.PatchRoomPlaced, protocol.RoomPlaced{Room: room})
	}
	return snapshot, nil
}

func (e *Engine) build(cfg labyrinth.Config) (protocol.Snapshot, error) {
	b, err := labyrinth.New(cfg)
	if err != nil {
		return protocol.Snapshot{}, fmt.Errorf("invalid build config: %w", err)
	}
	lab, err := b.Build()
	if lab == nil {
		return protocol.Snapshot{}, err
	}
	snapshot := protocol.NewSnapshot(lab.Seed, cfg.CellUnit, lab.Field, lab.Rooms)
	if err != nil {
		return snapshot, fmt.Errorf("build with seed %d: %w", lab.Seed, err)
	}
	return snapshot, nil
}
