package events

import "time"

// Event is anything published on the bus. Type is one of the Type* constants
// and is what subscribers filter on.
type Event interface {
	Type() string
	Timestamp() time.Time
	MatchID() string
}

// BaseEvent is embedded by every concrete event.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Match     string    `json:"match_id"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) MatchID() string      { return e.Match }

func newBase(eventType, matchID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Match: matchID}
}

// EventMetadata identifies the turn an event belongs to: the player whose
// main turn it is and the card-play round that turn falls in. Rounds count
// from 1; a whole round has every alive player take one turn.
type EventMetadata struct {
	PlayerID int `json:"player_id"`
	Round    int `json:"round,omitempty"`
}

// EventHandler is a function subscribed to a single event type.
type EventHandler func(Event)

// Subscriber receives every event it declares interest in. The bus calls
// HandleEvent synchronously on the publishing goroutine.
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is what the state machine needs from the bus.
type Publisher interface {
	Publish(Event)
}
