package amqp

import (
	"encoding/json"
	"time"
)

// AggregateChanged tells the mirror worker that one finance aggregate was
// rewritten. It carries only the storage key and a revision counter; the
// worker reloads the aggregate from the shared store.
type AggregateChanged struct {
	Aggregate string    `json:"aggregate"`
	Revision  int64     `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAggregateChanged creates a change notification stamped with the
// current time.
func NewAggregateChanged(aggregate string, revision int64) *AggregateChanged {
	return &AggregateChanged{
		Aggregate: aggregate,
		Revision:  revision,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *AggregateChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// AggregateChangedFromJSON parses a message from JSON bytes.
func AggregateChangedFromJSON(data []byte) (*AggregateChanged, error) {
	var msg AggregateChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
