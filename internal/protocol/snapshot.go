package protocol

import "github.com/Ko-stant/labyrinth-engine/internal/geometry"

// Cell encoding in Snapshot.Cells. Non-negative values are distances.
const (
	CellRoom         = -1
	CellUncalculated = -2
	CellHall         = -3
)

type RoomLite struct {
	Index  int `json:"index"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Snapshot struct {
	Seed            uint64     `json:"seed"`
	Width           int        `json:"width"`
	Height          int        `json:"height"`
	CellUnit        float64    `json:"cellUnit"`
	Cells           []int      `json:"cells"`
	Rooms           []RoomLite `json:"rooms"`
	HallCells       int        `json:"hallCells"`
	ProtocolVersion string     `json:"protocolVersion"`
}

// EncodeCell flattens a field cell to its wire value.
func EncodeCell(c geometry.Cell) int {
	switch c.Kind {
	case geometry.KindRoom:
		return CellRoom
	case geometry.KindHall:
		return CellHall
	case geometry.KindUncalculated:
		return CellUncalculated
	}
	return c.Dist
}

func RoomLites(rooms []geometry.Rect) []RoomLite {
	out := make([]RoomLite, 0, len(rooms))
	for i, r := range rooms {
		size := r.Size()
		out = append(out, RoomLite{Index: i, X: r.Min.X, Y: r.Min.Y, Width: size.X, Height: size.Y})
	}
	return out
}

// NewSnapshot captures a finished field row-major, row = y.
func NewSnapshot(seed uint64, cellUnit float64, field *geometry.DistanceField, rooms []geometry.Rect) Snapshot {
	cells := make([]int, 0, field.Width()*field.Height())
	for _, c := range field.Cells() {
		cells = append(cells, EncodeCell(c))
	}
	return Snapshot{
		Seed:            seed,
		Width:           field.Width(),
		Height:          field.Height(),
		CellUnit:        cellUnit,
		Cells:           cells,
		Rooms:           RoomLites(rooms),
		HallCells:       field.Count(geometry.KindHall),
		ProtocolVersion: "v0",
	}
}

// At returns the wire value of the cell at (x, y).
func (s Snapshot) At(x, y int) int {
	return s.Cells[y*s.Width+x]
}
