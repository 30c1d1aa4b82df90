package subscribers

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/conquest/internal/game/events"
)

// Recorder buffers every event it receives until drained. A match uses one
// to hand back the events produced by a single API call.
type Recorder struct {
	id     string
	mu     sync.Mutex
	events []events.Event
}

// NewRecorder creates a recorder with a random ID
func NewRecorder() *Recorder {
	return &Recorder{id: "recorder-" + uuid.NewString()}
}

// ID returns the subscriber's unique identifier
func (r *Recorder) ID() string {
	return r.id
}

// InterestedIn accepts every event type
func (r *Recorder) InterestedIn(string) bool {
	return true
}

// HandleEvent buffers the event
func (r *Recorder) HandleEvent(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Len returns the number of buffered events
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Drain returns the buffered events in publish order and empties the buffer
func (r *Recorder) Drain() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}
