package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

const (
	PatchLabyrinthBuilt = "LabyrinthBuilt"
	PatchRoomPlaced     = "RoomPlaced"
	PatchBuildFailed    = "BuildFailed"
)

type LabyrinthBuilt struct {
	Snapshot Snapshot `json:"snapshot"`
}

type RoomPlaced struct {
	Room RoomLite `json:"room"`
}

type BuildFailed struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
