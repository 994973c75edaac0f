package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
	"github.com/Ko-stant/labyrinth-engine/internal/ws"
)

func main() {
	cfg, err := LoadConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	room, err := loadRoom(cfg.RoomFile)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}

	StartProfiling(cfg.Profiling)

	logger := NewLogger()
	metrics := NewBuildMetrics()
	StartMetricsReporting(metrics, cfg.MetricsInterval, logger)

	hub := ws.NewHub()
	broadcaster := NewBroadcaster(hub, NewSequenceGenerator(), logger)
	engine := NewEngine(cfg.Defaults, room, broadcaster, logger, metrics)
	engine.SetVerbose(cfg.Verbose)

	if _, err := engine.Build(protocol.RequestBuild{}); err != nil {
		log.Printf("initial build failed: %v", err)
	}

	handlers := NewHandlers(engine, hub, logger)
	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.Routes()))
}
