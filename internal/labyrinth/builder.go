// Package labyrinth lays out rooms on a grid and carves hallways between
// them using a distance field.
package labyrinth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

const DefaultMaxPlacementAttempts = 256

// Config is the immutable input of a build.
type Config struct {
	Width    int
	Height   int
	Rooms    int
	CellUnit float64
	Room     geometry.Room
	// Seed fixes the random source. Nil seeds from the clock.
	Seed *uint64
	// MaxPlacementAttempts caps the random directions tried per room.
	// Zero means DefaultMaxPlacementAttempts.
	MaxPlacementAttempts int
	// Verbose logs the finished field.
	Verbose bool
	Logger  Logger
}

type State int

const (
	StateUnbuilt State = iota
	StateFieldReset
	StateFirstRoomPlaced
	StateRandomSeeded
	StatePlacingRooms
	StateFieldConsistent
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateFieldReset:
		return "field-reset"
	case StateFirstRoomPlaced:
		return "first-room-placed"
	case StateRandomSeeded:
		return "random-seeded"
	case StatePlacingRooms:
		return "placing-rooms"
	case StateFieldConsistent:
		return "field-consistent"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Labyrinth is the result of a build.
type Labyrinth struct {
	// Seed is the resolved random seed; feeding it back reproduces the build.
	Seed      uint64
	Field     *geometry.DistanceField
	Rooms     []geometry.Rect
	HallCells int
}

// Builder places rooms and hallways. A Builder is not safe for concurrent use.
type Builder struct {
	cfg      Config
	conv     geometry.CellUnitConverter
	roomSize geometry.Point
	logger   Logger
	state    State
}

// New validates cfg and returns a builder ready to Build.
func New(cfg Config) (*Builder, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: got width=%d height=%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Rooms < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoomCount, cfg.Rooms)
	}
	conv, err := geometry.NewCellUnitConverter(cfg.CellUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid labyrinth cell unit: %w", err)
	}
	for i, d := range cfg.Room.Doors() {
		if d.Forward().Length() == 0 {
			return nil, fmt.Errorf("door %d at %v: %w", i, d.Position(), geometry.ErrZeroDirection)
		}
	}
	size := cfg.Room.CellSize(conv)
	if size.X < 1 || size.Y < 1 || size.X > cfg.Width || size.Y > cfg.Height {
		return nil, fmt.Errorf("%w: room of %v meters is %v cells on a %dx%d grid",
			ErrRoomDoesNotFit, cfg.Room.Dimensions(), size, cfg.Width, cfg.Height)
	}
	if cfg.MaxPlacementAttempts <= 0 {
		cfg.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}
	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Builder{cfg: cfg, conv: conv, roomSize: size, logger: logger}, nil
}

func (b *Builder) Config() Config { return b.cfg }

func (b *Builder) State() State { return b.state }

// Build lays out a fresh labyrinth. Every call starts from an empty field.
// On a placement or connection failure the partial labyrinth is returned
// alongside the error.
func (b *Builder) Build() (*Labyrinth, error) {
	field, err := geometry.NewDistanceField(b.cfg.Width, b.cfg.Height)
	if err != nil {
		return nil, err
	}
	b.state = StateFieldReset

	seed := b.resolveSeed()
	lab := &Labyrinth{Seed: seed, Field: field}
	if b.cfg.Rooms < 1 {
		b.state = StateDone
		return lab, nil
	}

	st := &buildState{
		Builder: b,
		field:   field,
		seedSet: mapset.New[geometry.Point](),
	}
	st.placeFirstRoom()
	b.state = StateFirstRoomPlaced

	st.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b.state = StateRandomSeeded
	b.logger.Printf("labyrinth %dx%d: building %d rooms with seed %d", b.cfg.Width, b.cfg.Height, b.cfg.Rooms, seed)

	field.Recalculate(st.seeds)
	b.state = StatePlacingRooms
	for i := 1; i < b.cfg.Rooms; i++ {
		if err := st.placeRoom(i); err != nil {
			b.state = StateFailed
			lab.Rooms = st.rooms
			lab.HallCells = field.Count(geometry.KindHall)
			return lab, err
		}
	}
	b.state = StateFieldConsistent

	lab.Rooms = st.rooms
	lab.HallCells = field.Count(geometry.KindHall)
	if unreached := unreachableRooms(field, b.cfg.Room, b.conv, st.rooms); len(unreached) > 0 {
		b.state = StateFailed
		return lab, fmt.Errorf("%w: rooms %v cannot reach room 0", ErrDisconnected, unreached)
	}
	if b.cfg.Verbose {
		b.logger.Printf("labyrinth seed %d:\n%s", seed, field)
	}
	b.state = StateDone
	return lab, nil
}

func (b *Builder) resolveSeed() uint64 {
	if b.cfg.Seed != nil {
		return *b.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// buildState is everything that lives for a single Build call.
type buildState struct {
	*Builder
	field   *geometry.DistanceField
	seeds   []geometry.Point
	seedSet mapset.Set[geometry.Point]
	rng     *rand.Rand
	rooms   []geometry.Rect
}

// addSeed registers p as a zero-distance source once. Halls keep their marker.
func (st *buildState) addSeed(p geometry.Point) {
	if st.seedSet.Has(p) {
		return
	}
	st.seedSet.Put(p)
	st.seeds = append(st.seeds, p)
	if st.field.At(p).Kind != geometry.KindHall {
		st.field.Set(p, geometry.DistanceCell(0))
	}
}

// addDoorSeeds marks the exterior cell of every door of a room placed at
// origin as a potential door.
func (st *buildState) addDoorSeeds(origin geometry.Point) {
	for _, door := range st.cfg.Room.Doors() {
		cell := door.ExteriorCell(origin, st.conv)
		if !st.field.InBounds(cell) || st.field.At(cell).Kind == geometry.KindRoom {
			continue
		}
		st.addSeed(cell)
	}
}
