package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

// BuildDefaults fill in whatever a build request leaves out
type BuildDefaults struct {
	Width                int
	Height               int
	Rooms                int
	CellUnit             float64
	Seed                 *uint64
	MaxPlacementAttempts int
}

// ServerConfig holds the driver configuration
type ServerConfig struct {
	Port            string
	RoomFile        string
	Defaults        BuildDefaults
	Verbose         bool
	MetricsInterval time.Duration
	Profiling       ProfilingConfig
}

// LoadConfigFromEnv reads the server configuration from environment variables
func LoadConfigFromEnv(getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{
		Port:     getenv("APP_PORT"),
		RoomFile: getenv("LABYRINTH_ROOM_FILE"),
		Defaults: BuildDefaults{
			Width:    20,
			Height:   20,
			Rooms:    3,
			CellUnit: 2.0,
		},
		Verbose:   getenv("LABYRINTH_VERBOSE") == "true",
		Profiling: GetProfilingConfigFromEnv(getenv),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var err error
	if cfg.Defaults.Width, err = envInt(getenv, "LABYRINTH_WIDTH", cfg.Defaults.Width); err != nil {
		return cfg, err
	}
	if cfg.Defaults.Height, err = envInt(getenv, "LABYRINTH_HEIGHT", cfg.Defaults.Height); err != nil {
		return cfg, err
	}
	if cfg.Defaults.Rooms, err = envInt(getenv, "LABYRINTH_ROOMS", cfg.Defaults.Rooms); err != nil {
		return cfg, err
	}
	if cfg.Defaults.MaxPlacementAttempts, err = envInt(getenv, "LABYRINTH_MAX_ATTEMPTS", 0); err != nil {
		return cfg, err
	}
	if v := getenv("LABYRINTH_CELL_UNIT"); v != "" {
		if cfg.Defaults.CellUnit, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("invalid LABYRINTH_CELL_UNIT %q: %w", v, err)
		}
	}
	if v := getenv("LABYRINTH_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid LABYRINTH_SEED %q: %w", v, err)
		}
		cfg.Defaults.Seed = &seed
	}
	if v := getenv("METRICS_INTERVAL"); v != "" {
		if cfg.MetricsInterval, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("invalid METRICS_INTERVAL %q: %w", v, err)
		}
	}
	return cfg, nil
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// loadRoom reads the room prefab, falling back to a 6m square with a door
// centered on each wall
func loadRoom(path string) (geometry.Room, error) {
	if path == "" {
		return geometry.FourDoorRoom(6, 3), nil
	}
	def, err := geometry.LoadRoomFromFile(path)
	if err != nil {
		return geometry.Room{}, err
	}
	return def.Room()
}
