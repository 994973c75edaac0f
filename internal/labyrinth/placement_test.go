package labyrinth

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

func TestNextSearchPoint(t *testing.T) {
	tests := []struct {
		name    string
		pos     geometry.Vec2
		dir     geometry.Vec2
		spacing float64
		want    geometry.Vec2
	}{
		{"east", geometry.Vec2{X: 0.5, Y: 0.5}, geometry.Vec2{X: 1}, 1, geometry.Vec2{X: 1, Y: 0.5}},
		{"west on boundary", geometry.Vec2{X: 2, Y: 0}, geometry.Vec2{X: -0.3}, 1, geometry.Vec2{X: 1, Y: 0}},
		{"north", geometry.Vec2{X: 0.5, Y: 0}, geometry.Vec2{Y: 0.2}, 2, geometry.Vec2{X: 0.5, Y: 2}},
		{"south", geometry.Vec2{X: 0.5, Y: 0}, geometry.Vec2{Y: -1}, 1, geometry.Vec2{X: 0.5, Y: -1}},
		{"diagonal corner", geometry.Vec2{X: 0.5, Y: 0.5}, geometry.Vec2{X: 1, Y: 1}, 1, geometry.Vec2{X: 1, Y: 1}},
		{"shallow", geometry.Vec2{}, geometry.Vec2{X: 1, Y: 0.5}, 1, geometry.Vec2{X: 1, Y: 0.5}},
		{"steep", geometry.Vec2{}, geometry.Vec2{X: 0.25, Y: 1}, 1, geometry.Vec2{X: 0.25, Y: 1}},
		{"steep backwards", geometry.Vec2{}, geometry.Vec2{X: -0.25, Y: -1}, 2, geometry.Vec2{X: -0.5, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextSearchPoint(tt.pos, tt.dir, tt.spacing)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestNextSearchPoint_AlwaysAdvances(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		dir := geometry.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		start := geometry.Vec2{X: 20, Y: 20}
		pos := start
		progress := 0.0
		for range 40 {
			next := nextSearchPoint(pos, dir, 2)
			d := (next.X-start.X)*dir.X + (next.Y-start.Y)*dir.Y
			require.Greater(t, d, progress, "dir %v stalled at %v", dir, pos)
			// Each step is at most one cell diagonal.
			require.LessOrEqual(t, math.Sqrt(geometry.DistanceSquared(pos, next)), 2*math.Sqrt2+1e-9)
			progress = d
			pos = next
		}
	}
}

func newTestState(t *testing.T, cfg Config) *buildState {
	t.Helper()
	b, err := New(cfg)
	require.NoError(t, err)
	field, err := geometry.NewDistanceField(cfg.Width, cfg.Height)
	require.NoError(t, err)
	seed := uint64(1)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return &buildState{
		Builder: b,
		field:   field,
		seedSet: mapset.New[geometry.Point](),
		rng:     rand.New(rand.NewPCG(seed, seed)),
	}
}

func TestSearchPath_FindsFirstFreeSpotAlongDirection(t *testing.T) {
	st := newTestState(t, testConfig(2, 1))
	st.placeFirstRoom()
	st.field.Recalculate(st.seeds)

	origin, ok := st.searchPath(geometry.Vec2{X: 1})
	require.True(t, ok)
	// The first room covers x 9..11 and its east door seed sits at x=12.
	assert.Equal(t, geometry.Pt(13, 10), origin)

	origin, ok = st.searchPath(geometry.Vec2{Y: -1})
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(10, 5), origin)
}

func TestSearchPath_GivesUpOffGrid(t *testing.T) {
	cfg := testConfig(2, 1)
	cfg.Width, cfg.Height = 5, 5
	st := newTestState(t, cfg)
	st.placeFirstRoom()

	_, ok := st.searchPath(geometry.Vec2{X: 0.3, Y: -0.8})
	assert.False(t, ok)
}

func TestPlaceRoom_RegistersDoorsAndHall(t *testing.T) {
	st := newTestState(t, testConfig(2, 9))
	st.placeFirstRoom()
	st.field.Recalculate(st.seeds)

	require.NoError(t, st.placeRoom(1))
	require.Len(t, st.rooms, 2)
	assert.False(t, st.rooms[0].Overlaps(st.rooms[1]))
	assert.Positive(t, st.field.Count(geometry.KindHall))

	for _, door := range st.cfg.Room.Doors() {
		cell := door.ExteriorCell(st.rooms[1].Min, st.conv)
		if !st.field.InBounds(cell) || st.field.At(cell).Kind == geometry.KindRoom {
			continue
		}
		assert.True(t, st.seedSet.Has(cell), "door %v not seeded", cell)
		assert.True(t, st.field.At(cell).Claimed())
	}
	assert.Equal(t, len(st.seeds), st.seedSet.Size())
}
