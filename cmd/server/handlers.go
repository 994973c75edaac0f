package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
	"github.com/Ko-stant/labyrinth-engine/internal/web/views"
	"github.com/Ko-stant/labyrinth-engine/internal/ws"
)

// Handlers serves the labyrinth over HTTP and WebSocket
type Handlers struct {
	engine LabyrinthEngine
	hub    *ws.Hub
	logger Logger
}

func NewHandlers(engine LabyrinthEngine, hub *ws.Hub, logger Logger) *Handlers {
	return &Handlers{engine: engine, hub: hub, logger: logger}
}

// Routes wires every endpoint onto a chi router
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", h.handleIndex)
	r.Get("/stream", h.handleStream)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/labyrinth", h.handleGetLabyrinth)
		r.Post("/labyrinth", h.handleBuildLabyrinth)
	})
	return r
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) handleGetLabyrinth(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.engine.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, &APIError{Code: "NOT_BUILT", Message: "no labyrinth has been built yet"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handlers) handleBuildLabyrinth(w http.ResponseWriter, r *http.Request) {
	var req protocol.RequestBuild
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, &APIError{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	snapshot, err := h.engine.Build(req)
	if err != nil {
		apiErr := toAPIError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.engine.Latest()
	if !ok {
		var err error
		if snapshot, err = h.engine.Build(protocol.RequestBuild{}); err != nil {
			apiErr := toAPIError(err)
			http.Error(w, apiErr.Error(), apiErr.Status)
			return
		}
	}
	if err := views.LabyrinthPage(snapshot).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := h.hub.Add(r.Context(), conn); err != nil {
		h.logger.Printf("replay to new client failed: %v", err)
	}
	defer h.hub.Remove(conn)

	ctx := context.WithoutCancel(r.Context())
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if err := h.HandleMessage(data); err != nil {
			h.logger.Printf("intent rejected: %v", err)
		}
	}
}

// HandleMessage dispatches one client intent
func (h *Handlers) HandleMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to unmarshal intent: %w", err)
	}
	switch env.Type {
	case protocol.IntentRequestBuild:
		var req protocol.RequestBuild
		if len(env.Payload) > 0 {
			if err := json.Unmarshal(env.Payload, &req); err != nil {
				return fmt.Errorf("failed to unmarshal %s: %w", env.Type, err)
			}
		}
		// Failures reach the client as a BuildFailed patch.
		_, err := h.engine.Build(req)
		return err
	default:
		return fmt.Errorf("unknown intent type %q", env.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
