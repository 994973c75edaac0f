// Command labyrinth builds one labyrinth and prints its distance field.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
	"github.com/Ko-stant/labyrinth-engine/internal/labyrinth"
)

func main() {
	width := flag.Int("width", 20, "labyrinth width in cells")
	height := flag.Int("height", 20, "labyrinth height in cells")
	rooms := flag.Int("rooms", 3, "number of rooms to place")
	cellUnit := flag.Float64("cell-unit", 2.0, "meters per cell")
	seed := flag.Uint64("seed", 0, "random seed (0 draws one from the clock)")
	roomFile := flag.String("room", "", "room definition JSON (default: 6m room with four doors)")
	attempts := flag.Int("max-attempts", 0, "placement attempts per room (0 uses the default)")
	verbose := flag.Bool("v", false, "log build progress")
	flag.Parse()

	room := geometry.FourDoorRoom(6, 3)
	if *roomFile != "" {
		def, err := geometry.LoadRoomFromFile(*roomFile)
		if err != nil {
			log.Fatalf("Failed to load room: %v", err)
		}
		if room, err = def.Room(); err != nil {
			log.Fatalf("Invalid room %s: %v", *roomFile, err)
		}
	}

	cfg := labyrinth.Config{
		Width:                *width,
		Height:               *height,
		Rooms:                *rooms,
		CellUnit:             *cellUnit,
		Room:                 room,
		MaxPlacementAttempts: *attempts,
	}
	if *seed != 0 {
		cfg.Seed = seed
	}
	if *verbose {
		cfg.Logger = log.Default()
	}

	b, err := labyrinth.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	lab, err := b.Build()
	if lab != nil {
		fmt.Printf("seed %d, %d rooms, %d hall cells\n%s", lab.Seed, len(lab.Rooms), lab.HallCells, lab.Field)
	}
	if err != nil {
		var perr *labyrinth.PlacementError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "room %d could not be placed; try a larger grid or fewer rooms\n", perr.Room)
		}
		log.Fatalf("Build failed: %v", err)
	}
}
