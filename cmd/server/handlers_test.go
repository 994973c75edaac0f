package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
	"github.com/Ko-stant/labyrinth-engine/internal/labyrinth"
	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
	"github.com/Ko-stant/labyrinth-engine/internal/ws"
)

type MockLabyrinthEngine struct {
	snapshot  protocol.Snapshot
	hasLatest bool
	buildErr  error
	requests  []protocol.RequestBuild
}

func (m *MockLabyrinthEngine) Build(req protocol.RequestBuild) (protocol.Snapshot, error) {
	m.requests = append(m.requests, req)
	if m.buildErr != nil {
		return protocol.Snapshot{}, m.buildErr
	}
	m.hasLatest = true
	return m.snapshot, nil
}

func (m *MockLabyrinthEngine) Latest() (protocol.Snapshot, bool) {
	return m.snapshot, m.hasLatest
}

func testSnapshot() protocol.Snapshot {
	return protocol.Snapshot{
		Seed:            5,
		Width:           2,
		Height:          1,
		CellUnit:        2,
		Cells:           []int{protocol.CellRoom, protocol.CellHall},
		Rooms:           []protocol.RoomLite{{Index: 0, X: 0, Y: 0, Width: 1, Height: 1}},
		HallCells:       1,
		ProtocolVersion: "v0",
	}
}

func newTestServer(t *testing.T, engine LabyrinthEngine) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandlers(engine, ws.NewHub(), &MockLogger{}).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandlers_Health(t *testing.T) {
	srv := newTestServer(t, &MockLabyrinthEngine{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandlers_GetLabyrinthBeforeBuild(t *testing.T) {
	srv := newTestServer(t, &MockLabyrinthEngine{})

	resp, err := http.Get(srv.URL + "/api/labyrinth")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlers_PostLabyrinth(t *testing.T) {
	engine := &MockLabyrinthEngine{snapshot: testSnapshot()}
	srv := newTestServer(t, engine)

	resp, err := http.Post(srv.URL+"/api/labyrinth", "application/json", strings.NewReader(`{"width":40,"rooms":0,"seed":9}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got protocol.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, testSnapshot(), got)

	require.Len(t, engine.requests, 1)
	req := engine.requests[0]
	assert.Equal(t, 40, req.Width)
	require.NotNil(t, req.Rooms)
	assert.Equal(t, 0, *req.Rooms)
	require.NotNil(t, req.Seed)
	assert.Equal(t, uint64(9), *req.Seed)
}

func TestHandlers_PostLabyrinthEmptyBodyUsesDefaults(t *testing.T) {
	engine := &MockLabyrinthEngine{snapshot: testSnapshot()}
	srv := newTestServer(t, engine)

	resp, err := http.Post(srv.URL+"/api/labyrinth", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, engine.requests, 1)
	assert.Equal(t, protocol.RequestBuild{}, engine.requests[0])
}

func TestHandlers_PostLabyrinthErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		buildErr   error
		wantStatus int
		wantCode   string
	}{
		{"malformed body", `{"width":`, nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid dimensions", `{}`, labyrinth.ErrInvalidDimensions, http.StatusBadRequest, "INVALID_CONFIG"},
		{"zero cell unit", `{}`, geometry.ErrZeroCellUnit, http.StatusBadRequest, "INVALID_CONFIG"},
		{"exhausted", `{}`, &labyrinth.PlacementError{Room: 2, Attempts: 256}, http.StatusUnprocessableEntity, "PLACEMENT_EXHAUSTED"},
		{"doorless room", `{}`, labyrinth.ErrNoDoors, http.StatusUnprocessableEntity, "NO_DOORS"},
		{"unexpected", `{}`, errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &MockLabyrinthEngine{buildErr: tt.buildErr})

			resp, err := http.Post(srv.URL+"/api/labyrinth", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var apiErr APIError
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestHandlers_IndexBuildsWhenEmpty(t *testing.T) {
	engine := &MockLabyrinthEngine{snapshot: testSnapshot()}
	srv := newTestServer(t, engine)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, engine.requests, 1)

	resp2, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Len(t, engine.requests, 1, "the latest labyrinth is reused")
}

func TestHandlers_HandleMessage(t *testing.T) {
	engine := &MockLabyrinthEngine{snapshot: testSnapshot()}
	h := NewHandlers(engine, ws.NewHub(), &MockLogger{})

	require.NoError(t, h.HandleMessage([]byte(`{"type":"RequestBuild","payload":{"height":12}}`)))
	require.NoError(t, h.HandleMessage([]byte(`{"type":"RequestBuild"}`)))
	require.Len(t, engine.requests, 2)
	assert.Equal(t, 12, engine.requests[0].Height)
	assert.Equal(t, protocol.RequestBuild{}, engine.requests[1])

	assert.Error(t, h.HandleMessage([]byte(`not json`)))
	assert.ErrorContains(t, h.HandleMessage([]byte(`{"type":"RequestMove"}`)), "unknown intent")
	assert.Len(t, engine.requests, 2)
}

func readEnvelope(t *testing.T, ctx context.Context, conn *websocket.Conn) protocol.PatchEnvelope {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var env protocol.PatchEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestStream_BuildIntentBroadcastsPatches(t *testing.T) {
	hub := ws.NewHub()
	logger := &MockLogger{}
	broadcaster := NewBroadcaster(hub, NewSequenceGenerator(), logger)
	engine := NewEngine(testDefaults(), geometry.FourDoorRoom(6, 3), broadcaster, logger, nil)
	srv := httptest.NewServer(NewHandlers(engine, hub, logger).Routes())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	intent := `{"type":"RequestBuild","payload":{"rooms":2,"seed":3}}`
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(intent)))

	built := readEnvelope(t, ctx, conn)
	assert.Equal(t, protocol.PatchLabyrinthBuilt, built.Type)
	assert.Equal(t, uint64(1), built.Sequence)

	for i := 0; i < 2; i++ {
		placed := readEnvelope(t, ctx, conn)
		assert.Equal(t, protocol.PatchRoomPlaced, placed.Type)
		assert.Equal(t, uint64(i+2), placed.Sequence)
	}

	// A late viewer receives the retained labyrinth straight away.
	late, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	defer late.Close(websocket.StatusNormalClosure, "")

	replay := readEnvelope(t, ctx, late)
	assert.Equal(t, protocol.PatchLabyrinthBuilt, replay.Type)
	assert.Equal(t, uint64(1), replay.Sequence)
}
