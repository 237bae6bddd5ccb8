package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the JSON frame written to sessions.
type Envelope struct {
	Type    Kind            `json:"type"`
	Seq     uint64          `json:"seq"`
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload"`
}

func Encode(e Event, seq uint64, at time.Time) ([]byte, error) {
	payload, err := Payload(e)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.Kind(), err)
	}
	return json.Marshal(Envelope{
		Type:    e.Kind(),
		Seq:     seq,
		At:      at,
		Payload: raw,
	})
}
