package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const IntentRequestBuild = "RequestBuild"

// RequestBuild asks for a new labyrinth. Zero fields fall back to the
// server defaults; a nil seed draws one from the clock.
type RequestBuild struct {
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Rooms    *int    `json:"rooms,omitempty"`
	CellUnit float64 `json:"cellUnit,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}
