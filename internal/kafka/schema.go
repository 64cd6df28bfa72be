package kafka

import (
	"encoding/json"
	"time"
)

const (
	RecordPositions = "positions"
	RecordError     = "error"

	CommandStream = "stream"
)

// Envelope is every record on the tracker events topic.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type PositionsPayload struct {
	Positions []PositionRecord `json:"positions"`
}

type PositionRecord struct {
	DeviceID  int64     `json:"deviceId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	FixTime   time.Time `json:"fixTime"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// ControlRecord is published to the tracker control topic.
type ControlRecord struct {
	Command     string  `json:"command"`
	DeviceIDs   []int64 `json:"device_ids"`
	RequestedAt int64   `json:"requested_at"`
}
